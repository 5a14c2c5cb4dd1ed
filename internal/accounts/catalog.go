package accounts

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/accountbook/internal/repositories/kv"
)

// Catalog looks across every account document kept in one repository.
type Catalog struct {
	repo kv.Repository
}

func NewCatalog(repo kv.Repository) *Catalog {
	return &Catalog{repo: repo}
}

// Namespaces returns the sorted namespaces that have a saved account
// document. The default (unnamespaced) document is reported as "".
// Keys that are not account documents are ignored.
func (c *Catalog) Namespaces(ctx context.Context) ([]string, error) {
	all, err := c.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list namespaces: %w", err)
	}

	names := []string{}
	for key := range all {
		if key == DefaultKey {
			names = append(names, "")
			continue
		}
		if ns, ok := strings.CutSuffix(key, ":"+DefaultKey); ok && ns != "" {
			names = append(names, ns)
		}
	}
	slices.Sort(names)
	return names, nil
}

// Wipe deletes every key in the repository, including documents of other
// namespaces.
func (c *Catalog) Wipe(ctx context.Context) error {
	if err := c.repo.Clear(ctx); err != nil {
		return fmt.Errorf("wipe repository: %w", err)
	}
	return nil
}
