package store

import (
	"sync"

	"shop-list-api/models"
)

// ProductListStore guarda a lista de produtos da sessão em memória,
// na ordem de inserção. Nenhuma operação faz I/O: quem fala com o
// Firestore é a camada de serviço, que só muta o store depois que a
// escrita remota deu certo.
type ProductListStore struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewProductListStore() *ProductListStore {
	return &ProductListStore{}
}

// Add acrescenta um produto ao fim da lista
func (s *ProductListStore) Add(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
}

// Remove descarta todos os produtos com o ID dado; sem efeito se não existir
func (s *ProductListStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
}

// ToggleChecked inverte o campo checked dos produtos com o ID dado;
// sem efeito se não existir
func (s *ProductListStore) ToggleChecked(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Checked = !s.products[i].Checked
		}
	}
}

// Clear esvazia a lista
func (s *ProductListStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
}

// Get devolve o primeiro produto com o ID dado
func (s *ProductListStore) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Products devolve uma cópia da lista, preservando a ordem de inserção
func (s *ProductListStore) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *ProductListStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
