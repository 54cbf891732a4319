package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/bazarna-store/api/internal/domain"
	"github.com/bazarna-store/api/internal/platform/kv"
)

// Key-value keys for the three persisted slices. The payload shapes mirror
// what earlier releases stored, so existing data keeps loading.
const (
	productsKey = "bazarna_products"
	cartKey     = "bazarna_cart"
	sessionKey  = "bazarna_user"
)

const defaultWriteTimeout = 5 * time.Second

// PersisterDeps wires the dependencies of the persistence adapter.
type PersisterDeps struct {
	KV           kv.Store
	Store        *Store
	Logger       *zap.Logger
	WriteTimeout time.Duration
}

// Persister mirrors slice changes into the key-value store and hydrates a
// fresh store on startup. It keeps all serialization concerns out of the
// state container itself.
type Persister struct {
	kv      kv.Store
	store   *Store
	logger  *zap.Logger
	timeout time.Duration
}

// NewPersister constructs the adapter, validating required dependencies.
func NewPersister(deps PersisterDeps) (*Persister, error) {
	if deps.KV == nil {
		return nil, errors.New("store persister: kv store is required")
	}
	if deps.Store == nil {
		return nil, errors.New("store persister: state store is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := deps.WriteTimeout
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}
	return &Persister{
		kv:      deps.KV,
		store:   deps.Store,
		logger:  logger,
		timeout: timeout,
	}, nil
}

// Load hydrates the store from the key-value store. Each slice degrades
// independently: an absent or unparsable value falls back to the slice
// default (seed catalog, empty cart, no session) and is only logged, never
// surfaced. Load must run before Bind so hydration does not write back.
func (p *Persister) Load(ctx context.Context) {
	catalog := domain.SeedCatalog()
	seeded := true
	if raw, ok := p.read(ctx, productsKey); ok {
		var docs []productDocument
		if err := json.Unmarshal([]byte(raw), &docs); err != nil {
			p.logger.Warn("discarding unparsable catalog payload", zap.Error(err))
		} else {
			catalog = productsFromDocuments(docs)
			seeded = false
		}
	}
	p.store.RestoreCatalog(catalog)
	if seeded {
		// First run: mirror the seed so the stored catalog matches what
		// shoppers see.
		p.persistCatalog(ctx)
	}

	var lines []domain.CartLine
	if raw, ok := p.read(ctx, cartKey); ok {
		var docs []cartLineDocument
		if err := json.Unmarshal([]byte(raw), &docs); err != nil {
			p.logger.Warn("discarding unparsable cart payload", zap.Error(err))
		} else {
			lines = linesFromDocuments(docs)
		}
	}
	p.store.RestoreCart(lines)

	var session *domain.Session
	if raw, ok := p.read(ctx, sessionKey); ok {
		var doc sessionDocument
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			p.logger.Warn("discarding unparsable session payload", zap.Error(err))
		} else {
			session = &domain.Session{Name: doc.Name, Email: doc.Email, Image: doc.Image}
		}
	}
	p.store.RestoreSession(session)
}

// Bind subscribes the adapter to slice changes. Every mutation triggers a
// synchronous re-serialization of the affected slice; write failures are
// logged and swallowed since no operation's correctness depends on the
// mirror succeeding within the same interaction.
func (p *Persister) Bind() {
	p.store.Subscribe(func(slice Slice) {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()

		switch slice {
		case SliceCatalog:
			p.persistCatalog(ctx)
		case SliceCart:
			p.persistCart(ctx)
		case SliceSession:
			p.persistSession(ctx)
		}
	})
}

func (p *Persister) read(ctx context.Context, key string) (string, bool) {
	raw, err := p.kv.Get(ctx, key)
	if err != nil {
		if !kv.IsNotFound(err) {
			p.logger.Warn("kv read failed; using slice default", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return raw, true
}

func (p *Persister) persistCatalog(ctx context.Context) {
	docs := documentsFromProducts(p.store.Catalog())
	p.write(ctx, productsKey, docs)
}

func (p *Persister) persistCart(ctx context.Context) {
	docs := documentsFromLines(p.store.Cart())
	p.write(ctx, cartKey, docs)
}

func (p *Persister) persistSession(ctx context.Context) {
	session, ok := p.store.Session()
	if !ok {
		// Absence is stored as key absence, not a serialized null.
		if err := p.kv.Delete(ctx, sessionKey); err != nil {
			p.logger.Warn("kv delete failed", zap.String("key", sessionKey), zap.Error(err))
		}
		return
	}
	p.write(ctx, sessionKey, sessionDocument{Name: session.Name, Email: session.Email, Image: session.Image})
}

func (p *Persister) write(ctx context.Context, key string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		p.logger.Warn("kv payload encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := p.kv.Set(ctx, key, string(raw)); err != nil {
		p.logger.Warn("kv write failed", zap.String("key", key), zap.Error(err))
	}
}

type productDocument struct {
	ID            string  `json:"id"`
	NameAr        string  `json:"nameAr"`
	NameEn        string  `json:"nameEn"`
	DescriptionAr string  `json:"descriptionAr"`
	DescriptionEn string  `json:"descriptionEn"`
	Price         float64 `json:"price"`
	OldPrice      float64 `json:"oldPrice,omitempty"`
	Category      string  `json:"category"`
	Image         string  `json:"image"`
	IsOffer       bool    `json:"isOffer,omitempty"`
}

type cartLineDocument struct {
	productDocument
	Quantity int `json:"quantity"`
}

type sessionDocument struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

func documentFromProduct(p domain.Product) productDocument {
	return productDocument{
		ID:            p.ID,
		NameAr:        p.NameAr,
		NameEn:        p.NameEn,
		DescriptionAr: p.DescriptionAr,
		DescriptionEn: p.DescriptionEn,
		Price:         p.Price,
		OldPrice:      p.OldPrice,
		Category:      string(p.Category),
		Image:         p.Image,
		IsOffer:       p.IsOffer,
	}
}

func productFromDocument(doc productDocument) domain.Product {
	return domain.Product{
		ID:            doc.ID,
		NameAr:        doc.NameAr,
		NameEn:        doc.NameEn,
		DescriptionAr: doc.DescriptionAr,
		DescriptionEn: doc.DescriptionEn,
		Price:         doc.Price,
		OldPrice:      doc.OldPrice,
		Category:      domain.Category(doc.Category),
		Image:         doc.Image,
		IsOffer:       doc.IsOffer,
	}
}

func documentsFromProducts(products []domain.Product) []productDocument {
	docs := make([]productDocument, 0, len(products))
	for _, p := range products {
		docs = append(docs, documentFromProduct(p))
	}
	return docs
}

func productsFromDocuments(docs []productDocument) []domain.Product {
	products := make([]domain.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, productFromDocument(doc))
	}
	return products
}

func documentsFromLines(lines []domain.CartLine) []cartLineDocument {
	docs := make([]cartLineDocument, 0, len(lines))
	for _, line := range lines {
		docs = append(docs, cartLineDocument{
			productDocument: documentFromProduct(line.Product),
			Quantity:        line.Quantity,
		})
	}
	return docs
}

func linesFromDocuments(docs []cartLineDocument) []domain.CartLine {
	lines := make([]domain.CartLine, 0, len(docs))
	for _, doc := range docs {
		lines = append(lines, domain.CartLine{
			Product:  productFromDocument(doc.productDocument),
			Quantity: doc.Quantity,
		})
	}
	return lines
}
