package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mercadito/catalog-service/internal/core/domain"
)

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(collectionProducts)}
}

type productDoc struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Name        string              `bson:"nombre"`
	UnitPrice   float64             `bson:"precioUni"`
	Description string              `bson:"descripcion,omitempty"`
	Available   bool                `bson:"disponible"`
	Category    *primitive.ObjectID `bson:"categoria,omitempty"`
	CreatedBy   *primitive.ObjectID `bson:"usuario,omitempty"`
}

func (r *ProductRepository) Insert(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	doc := fromDomainProduct(p)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	var doc productDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain(), nil
}

// FindAvailable returns available products only, sorted by name, one
// skip/limit page at a time.
func (r *ProductRepository) FindAvailable(ctx context.Context, offset, limit int64) ([]*domain.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "nombre", Value: 1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"disponible": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return r.decodeAll(ctx, cursor)
}

// SearchByName matches term as a case-insensitive substring. The term is
// quoted so regex metacharacters in user input match literally.
func (r *ProductRepository) SearchByName(ctx context.Context, term string) ([]*domain.Product, error) {
	filter := bson.M{"nombre": primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}

	return r.decodeAll(ctx, cursor)
}

// Replace overwrites the stored document with p, keeping its id. Used for
// the full-field product update and for retirement.
func (r *ProductRepository) Replace(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	doc := fromDomainProduct(p)
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var replaced productDoc
	if err := r.coll.FindOneAndReplace(ctx, bson.M{"_id": oid}, doc, opts).Decode(&replaced); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("replace product: %w", err)
	}
	return replaced.toDomain(), nil
}

func (r *ProductRepository) decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]*domain.Product, error) {
	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	out := make([]*domain.Product, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}

func fromDomainProduct(p *domain.Product) productDoc {
	doc := productDoc{
		Name:        p.Name,
		UnitPrice:   p.UnitPrice,
		Description: p.Description,
		Available:   p.Available,
	}
	if oid, err := primitive.ObjectIDFromHex(p.CategoryID); err == nil {
		doc.Category = &oid
	}
	if oid, err := primitive.ObjectIDFromHex(p.CreatedBy); err == nil {
		doc.CreatedBy = &oid
	}
	return doc
}

func (d productDoc) toDomain() *domain.Product {
	p := &domain.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		UnitPrice:   d.UnitPrice,
		Description: d.Description,
		Available:   d.Available,
	}
	if d.Category != nil {
		p.CategoryID = d.Category.Hex()
	}
	if d.CreatedBy != nil {
		p.CreatedBy = d.CreatedBy.Hex()
	}
	return p
}
