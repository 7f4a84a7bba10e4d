package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"shop-list-api/models"
	"shop-list-api/repositories"
	"shop-list-api/services"
)

type ProductController struct {
	Service      *services.ProductService
	Clients      map[*websocket.Conn]bool
	ClientsMutex sync.RWMutex
	FirestoreDB  *firestore.Client
	Collection   string
	Logger       *zap.Logger
}

func NewProductController(service *services.ProductService, firestoreDB *firestore.Client, collection string, logger *zap.Logger) *ProductController {
	controller := &ProductController{
		Service:     service,
		Clients:     make(map[*websocket.Conn]bool),
		FirestoreDB: firestoreDB,
		Collection:  collection,
		Logger:      logger,
	}

	// Inicia o listener do Firestore
	if firestoreDB != nil {
		go controller.listenToFirestoreChanges()
	}

	return controller
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler gerencia conexões WebSocket
func (c *ProductController) WebSocketHandler(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.Logger.Error("Erro ao atualizar conexão para WebSocket", zap.Error(err))
		return
	}
	defer conn.Close()

	// Configura conexão
	conn.SetReadLimit(512) // Limita o tamanho das mensagens
	c.registerClient(conn)
	defer c.unregisterClient(conn)

	// Configura ping/pong para manter a conexão ativa
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	go func() {
		for range ticker.C {
			if err := conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(5*time.Second)); err != nil {
				c.Logger.Warn("Erro ao enviar ping", zap.Error(err))
				return
			}
		}
	}()

	// Mantém a conexão aberta
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

// listenToFirestoreChanges monitora a coleção de produtos do usuário
// atual e notifica os clientes WebSocket
func (c *ProductController) listenToFirestoreChanges() {
	ctx := context.Background()
	query := c.FirestoreDB.Collection(c.Collection).
		Where("userId", "==", c.Service.UserID())

	// Cria um snapshot listener escopado ao usuário anônimo
	snapshot := query.Snapshots(ctx)
	defer snapshot.Stop()

	for {
		// Aguarda o próximo snapshot
		iter, err := snapshot.Next()
		if err != nil {
			c.Logger.Warn("Erro ao receber snapshot do Firestore", zap.Error(err))
			time.Sleep(5 * time.Second) // Espera antes de tentar novamente
			continue
		}

		// Processa as mudanças no snapshot
		for _, change := range iter.Changes {
			switch change.Kind {
			case firestore.DocumentAdded, firestore.DocumentModified:
				var doc repositories.ProductDocument
				if err := change.Doc.DataTo(&doc); err != nil {
					c.Logger.Warn("Erro ao decodificar produto do Firestore", zap.Error(err))
					continue
				}

				// documento fora do esquema não chega aos clientes
				product, err := doc.ToProduct(change.Doc.Ref.ID)
				if err != nil {
					c.Logger.Warn("Produto remoto inválido ignorado",
						zap.String("id", change.Doc.Ref.ID), zap.Error(err))
					continue
				}

				action := "UPDATE"
				if change.Kind == firestore.DocumentAdded {
					action = "CREATE"
				}

				c.notifyClients(UpdateAction{
					Type:      action,
					ProductID: product.ID,
					Payload: gin.H{
						"product": product,
					},
				})

			case firestore.DocumentRemoved:
				// Notifica os clientes sobre a remoção de um produto
				c.notifyClients(UpdateAction{
					Type:      "DELETE",
					ProductID: change.Doc.Ref.ID,
				})
			}
		}
	}
}

// notifyClients envia atualizações para todos os clientes conectados
func (c *ProductController) notifyClients(update UpdateAction) {
	message, err := json.Marshal(update)
	if err != nil {
		c.Logger.Error("Erro ao serializar atualização", zap.Error(err))
		return
	}

	c.ClientsMutex.RLock()
	defer c.ClientsMutex.RUnlock()

	for conn := range c.Clients {
		go func(conn *websocket.Conn) {
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.Logger.Warn("Erro ao enviar mensagem", zap.Error(err))
				conn.Close()
				c.unregisterClient(conn)
			}
		}(conn)
	}
}

// registerClient adiciona um cliente ao mapa de conexões
func (c *ProductController) registerClient(conn *websocket.Conn) {
	c.ClientsMutex.Lock()
	defer c.ClientsMutex.Unlock()
	c.Clients[conn] = true
}

// unregisterClient remove um cliente do mapa de conexões
func (c *ProductController) unregisterClient(conn *websocket.Conn) {
	c.ClientsMutex.Lock()
	defer c.ClientsMutex.Unlock()
	delete(c.Clients, conn)
}

// UpdateAction define a estrutura de uma atualização
type UpdateAction struct {
	Type      string      `json:"type"`      // "CREATE", "UPDATE", "DELETE"
	ProductID string      `json:"productId"` // ID do produto
	Payload   interface{} `json:"payload"`   // Dados da atualização
}

// GetProducts retorna a lista de produtos da sessão
func (c *ProductController) GetProducts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"loading":  c.Service.Loading(),
		"products": c.Service.Products(),
	})
}

// CreateProduct adiciona um produto à lista
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	product, err := c.Service.Create(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao adicionar o produto"})
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// ToggleProduct inverte o status de checked de um produto
func (c *ProductController) ToggleProduct(ctx *gin.Context) {
	id := ctx.Param("id")

	product, err := c.Service.ToggleChecked(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao mudar o status do produto"})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct remove um produto da lista
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.Service.Remove(ctx.Request.Context(), id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao remover o produto"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Produto removido"})
}
