package repositories

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"shop-list-api/models"
)

// ProductRepository é o gateway para a coleção remota de produtos
type ProductRepository interface {
	Insert(ctx context.Context, userID string, product models.Product) (string, error)
	ListByUser(ctx context.Context, userID string) ([]models.Product, error)
	SetChecked(ctx context.Context, id string, checked bool) error
	Delete(ctx context.Context, id string) error
}

// ProductDocument é o esquema persistido no Firestore
type ProductDocument struct {
	Name     string `firestore:"name"`
	Quantity int64  `firestore:"quantity"`
	Unity    string `firestore:"unity"`
	Category string `firestore:"category"`
	Checked  bool   `firestore:"checked"`
	UserID   string `firestore:"userId"`
}

// ToProduct converte o documento bruto validando os campos enumerados,
// para que categoria ou unidade fora do conjunto fechado nunca entre no
// store nem chegue aos clientes WebSocket
func (d ProductDocument) ToProduct(id string) (models.Product, error) {
	unity, err := models.ParseUnity(d.Unity)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: unity %q", models.ErrParse, d.Unity)
	}
	category, err := models.ParseCategory(d.Category)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: category %q", models.ErrParse, d.Category)
	}
	if d.Name == "" || d.Quantity <= 0 {
		return models.Product{}, fmt.Errorf("%w: name %q, quantity %d", models.ErrParse, d.Name, d.Quantity)
	}

	return models.Product{
		ID:       id,
		Name:     d.Name,
		Quantity: int(d.Quantity),
		Unity:    unity,
		Category: category,
		Checked:  d.Checked,
	}, nil
}

type firestoreProductRepository struct {
	db         *firestore.Client
	collection string
	logger     *zap.Logger
}

func NewProductRepository(db *firestore.Client, collection string, logger *zap.Logger) ProductRepository {
	return &firestoreProductRepository{db: db, collection: collection, logger: logger}
}

func (r *firestoreProductRepository) Insert(ctx context.Context, userID string, product models.Product) (string, error) {
	ref, _, err := r.db.Collection(r.collection).Add(ctx, map[string]interface{}{
		"name":     product.Name,
		"quantity": product.Quantity,
		"unity":    string(product.Unity),
		"category": string(product.Category),
		"checked":  product.Checked,
		"userId":   userID,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrRemoteUnavailable, err)
	}
	return ref.ID, nil
}

func (r *firestoreProductRepository) ListByUser(ctx context.Context, userID string) ([]models.Product, error) {
	snapshot, err := r.db.Collection(r.collection).
		Where("userId", "==", userID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrRemoteUnavailable, err)
	}

	var products []models.Product
	for _, doc := range snapshot {
		var d ProductDocument
		if err := doc.DataTo(&d); err != nil {
			r.logger.Warn("Erro ao decodificar produto do Firestore",
				zap.String("id", doc.Ref.ID), zap.Error(err))
			continue
		}

		product, err := d.ToProduct(doc.Ref.ID)
		if err != nil {
			// documento fora do esquema não entra no store
			r.logger.Warn("Produto remoto inválido ignorado",
				zap.String("id", doc.Ref.ID), zap.Error(err))
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

func (r *firestoreProductRepository) SetChecked(ctx context.Context, id string, checked bool) error {
	_, err := r.db.Collection(r.collection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "checked", Value: checked},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%s: %w", id, models.ErrProductNotFound)
		}
		return fmt.Errorf("%w: %v", models.ErrRemoteUnavailable, err)
	}
	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	// apagar um documento inexistente não é erro no Firestore,
	// o que combina com a semântica de no-op da remoção
	_, err := r.db.Collection(r.collection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrRemoteUnavailable, err)
	}
	return nil
}
