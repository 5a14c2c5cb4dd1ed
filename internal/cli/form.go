package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/accountbook/internal/models"
)

var errInvalidForm = errors.New("account data is invalid")

// clearValue entered at a prompt empties a text field.
const clearValue = "-"

// fillForm prompts for every field starting from cur. Pressing Enter keeps
// the current value. The password is only asked for local accounts and is
// dropped for any other type.
func (a *App) fillForm(cur models.AccountFormInput) (models.AccountFormInput, error) {
	in := cur

	label, err := a.askRaw(fmt.Sprintf("Labels, separated by ';' [%s]", cur.LabelRaw), cur.LabelRaw)
	if err != nil {
		return in, err
	}
	in.LabelRaw = label

	typ, err := a.ask(fmt.Sprintf("Type, ldap or local [%s]", typeName(cur.Type)), string(cur.Type))
	if err != nil {
		return in, err
	}
	in.Type = ParseAccountType(typ)

	login, err := a.ask(fmt.Sprintf("Login [%s]", cur.Login), cur.Login)
	if err != nil {
		return in, err
	}
	in.Login = login

	in.Password = ""
	if in.Type == models.AccountTypeLocal {
		prompt := "Password"
		if cur.Password != "" {
			prompt = "Password (Enter keeps the current one)"
		}
		pw, err := a.askSecret(prompt)
		if err != nil {
			return in, err
		}
		if pw == "" {
			pw = cur.Password
		}
		in.Password = pw
	}

	return in, nil
}

// ask reads one line; an empty answer yields def and clearValue yields "".
func (a *App) ask(prompt, def string) (string, error) {
	s, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	switch s {
	case "":
		return def, nil
	case clearValue:
		return "", nil
	}
	return s, nil
}

// askRaw is ask for fields validated before trimming. The keep and clear
// answers are still recognised around spaces.
func (a *App) askRaw(prompt, def string) (string, error) {
	s, err := GetRawText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	switch strings.TrimSpace(s) {
	case "":
		return def, nil
	case clearValue:
		return "", nil
	}
	return s, nil
}

// askSecret reads a password without echo on a terminal and as a plain line
// otherwise.
func (a *App) askSecret(prompt string) (string, error) {
	if !a.terminal {
		return GetSimpleText(a.reader, prompt, a.out)
	}
	pw, err := GetPassword(prompt, a.out)
	if err != nil {
		return "", err
	}
	defer wipe(pw)
	return string(pw), nil
}

// wipe zeroes b so the raw terminal bytes do not linger.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// checkForm validates in and prints one line per failing field.
func (a *App) checkForm(in models.AccountFormInput) error {
	res := models.ValidateWith(in, a.messages)
	if res.Valid {
		return nil
	}
	for _, f := range []models.Field{models.FieldLabel, models.FieldType, models.FieldLogin, models.FieldPassword} {
		if msg, ok := res.Errors[f]; ok {
			printf(a.out, "  %s: %s\n", f, msg)
		}
	}
	return errInvalidForm
}
