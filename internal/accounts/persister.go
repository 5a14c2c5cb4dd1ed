package accounts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/accountbook/internal/common"
	"github.com/dmitrijs2005/accountbook/internal/models"
	"github.com/dmitrijs2005/accountbook/internal/repositories/kv"
)

// DefaultKey is the key the account list is stored under.
const DefaultKey = "accounts"

// Document is the persisted form of the whole store.
type Document struct {
	Accounts []models.AccountRecord `json:"accounts"`
}

// Persister loads and saves the account document.
type Persister interface {
	// Load returns (nil, nil) when nothing has been saved yet.
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc Document) error
	// Delete removes the saved document. Deleting nothing is not an error.
	Delete(ctx context.Context) error
	Close() error
}

// Key builds the storage key for an optional namespace: "accounts" or
// "<namespace>:accounts".
func Key(namespace string) string {
	if namespace == "" {
		return DefaultKey
	}
	return namespace + ":" + DefaultKey
}

// KVPersister stores the document as JSON under one key of a kv.Repository.
type KVPersister struct {
	repo kv.Repository
	key  string
}

func NewKVPersister(repo kv.Repository, key string) *KVPersister {
	if key == "" {
		key = DefaultKey
	}
	return &KVPersister{repo: repo, key: key}
}

func (p *KVPersister) Load(ctx context.Context) (*Document, error) {
	data, err := p.repo.Get(ctx, p.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", p.key, err)
	}
	if data == nil {
		return nil, nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrCorruptDocument, p.key, err)
	}
	for i := range doc.Accounts {
		if doc.Accounts[i].Label == nil {
			doc.Accounts[i].Label = []models.LabelTag{}
		}
	}
	return &doc, nil
}

func (p *KVPersister) Save(ctx context.Context, doc Document) error {
	if doc.Accounts == nil {
		doc.Accounts = []models.AccountRecord{}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", p.key, err)
	}
	if err := p.repo.Set(ctx, p.key, data); err != nil {
		return fmt.Errorf("save %s: %w", p.key, err)
	}
	return nil
}

func (p *KVPersister) Delete(ctx context.Context) error {
	if err := p.repo.Delete(ctx, p.key); err != nil {
		return fmt.Errorf("delete %s: %w", p.key, err)
	}
	return nil
}

func (p *KVPersister) Close() error {
	return p.repo.Close()
}
