package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"shop-list-api/models"
	"shop-list-api/repositories"
	"shop-list-api/store"
)

// ProductService coordena o store local e a coleção remota para o
// usuário anônimo da sessão. Toda operação escreve primeiro no remoto
// e só muta o store depois que a escrita deu certo: assim o store nunca
// mostra um estado que o remoto não tenha.
type ProductService struct {
	store  *store.ProductListStore
	repo   repositories.ProductRepository
	userID string
	logger *zap.Logger

	loading  atomic.Bool
	loadOnce sync.Once
}

func NewProductService(s *store.ProductListStore, repo repositories.ProductRepository, userID string, logger *zap.Logger) *ProductService {
	svc := &ProductService{
		store:  s,
		repo:   repo,
		userID: userID,
		logger: logger,
	}
	svc.loading.Store(true)
	return svc
}

// UserID devolve o identificador anônimo que escopa os dados remotos
func (s *ProductService) UserID() string {
	return s.userID
}

// Loading indica se a carga inicial ainda não terminou
func (s *ProductService) Loading() bool {
	return s.loading.Load()
}

// Load busca todos os produtos do usuário atual e semeia o store.
// A flag de loading vira false exatamente uma vez, com sucesso ou não.
func (s *ProductService) Load(ctx context.Context) error {
	defer s.loadOnce.Do(func() { s.loading.Store(false) })

	products, err := s.repo.ListByUser(ctx, s.userID)
	if err != nil {
		s.logger.Error("Erro ao carregar os produtos",
			zap.String("userId", s.userID), zap.Error(err))
		return err
	}

	for _, p := range products {
		s.store.Add(p)
	}

	s.logger.Info("Produtos carregados",
		zap.String("userId", s.userID), zap.Int("total", len(products)))
	return nil
}

// Create valida o formulário, insere o documento no remoto e, com o ID
// gerado, acrescenta o produto ao store. Em caso de falha remota o store
// fica intocado.
func (s *ProductService) Create(ctx context.Context, input models.ProductInput) (models.Product, error) {
	product, err := models.NewProduct(input)
	if err != nil {
		return models.Product{}, err
	}

	id, err := s.repo.Insert(ctx, s.userID, product)
	if err != nil {
		s.logger.Error("Erro ao adicionar o produto",
			zap.String("name", product.Name), zap.Error(err))
		return models.Product{}, err
	}

	product.ID = id
	s.store.Add(product)
	return product, nil
}

// ToggleChecked escreve a negação do checked local no remoto e só então
// inverte a flag no store
func (s *ProductService) ToggleChecked(ctx context.Context, id string) (models.Product, error) {
	current, ok := s.store.Get(id)
	if !ok {
		return models.Product{}, fmt.Errorf("%s: %w", id, models.ErrProductNotFound)
	}

	if err := s.repo.SetChecked(ctx, id, !current.Checked); err != nil {
		s.logger.Error("Erro ao mudar o status do produto",
			zap.String("id", id), zap.Error(err))
		return models.Product{}, err
	}

	s.store.ToggleChecked(id)
	current.Checked = !current.Checked
	return current, nil
}

// Remove apaga o documento remoto e só então tira o produto do store.
// Remover um ID ausente é no-op, não erro.
func (s *ProductService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Erro ao remover o produto",
			zap.String("id", id), zap.Error(err))
		return err
	}

	s.store.Remove(id)
	return nil
}

// Products devolve a lista atual na ordem de inserção
func (s *ProductService) Products() []models.Product {
	return s.store.Products()
}

// Clear esvazia o store local; não toca o remoto
func (s *ProductService) Clear() {
	s.store.Clear()
}
