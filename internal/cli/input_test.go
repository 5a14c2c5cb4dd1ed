package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/accountbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()

	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	var out bytes.Buffer
	pw, err := GetPassword("Password", &out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", string(pw))
	assert.Equal(t, "Password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword("Password", &out)
	require.Error(t, err)
}

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		in   string
		want models.AccountType
	}{
		{"ldap", models.AccountTypeLDAP},
		{"LDAP", models.AccountTypeLDAP},
		{" local ", models.AccountTypeLocal},
		{"Local", models.AccountTypeLocal},
		{"Локальная", models.AccountTypeLocal},
		{"локальная", models.AccountTypeLocal},
		{"kerberos", models.AccountType("kerberos")},
		{"", models.AccountType("")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAccountType(tt.in))
		})
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "ldap", typeName(models.AccountTypeLDAP))
	assert.Equal(t, "local", typeName(models.AccountTypeLocal))
	assert.Equal(t, "other", typeName("other"))
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	wipe(b)
	assert.Equal(t, make([]byte, 6), b)
	wipe(nil)
}

func TestGetRawText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetRawText(rdr("  padded  \r\n"), "Labels", &out)
	require.NoError(t, err)
	assert.Equal(t, "  padded  ", got)

	got, err = GetRawText(rdr("tail "), "Labels", &out)
	require.NoError(t, err)
	assert.Equal(t, "tail ", got)

	_, err = GetRawText(rdr(""), "Labels", &out)
	require.Error(t, err)
}
