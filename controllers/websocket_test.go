package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shop-list-api/models"
	"shop-list-api/services"
	"shop-list-api/store"
)

func newWebSocketController() *ProductController {
	gin.SetMode(gin.TestMode)

	// o serviço nunca toca o repositório neste caminho
	svc := services.NewProductService(store.NewProductListStore(), nil, "user-1", zap.NewNop())
	return NewProductController(svc, nil, "products", zap.NewNop())
}

func dialWebSocket(t *testing.T, controller *ProductController) *websocket.Conn {
	t.Helper()

	router := gin.New()
	router.GET("/ws", controller.WebSocketHandler)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// espera o handler registrar a conexão antes de notificar
	require.Eventually(t, func() bool {
		controller.ClientsMutex.RLock()
		defer controller.ClientsMutex.RUnlock()
		return len(controller.Clients) == 1
	}, time.Second, 10*time.Millisecond)

	return conn
}

func readAction(t *testing.T, conn *websocket.Conn) map[string]json.RawMessage {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(message, &fields))
	return fields
}

func TestNotifyClientsCreateAction(t *testing.T) {
	controller := newWebSocketController()
	conn := dialWebSocket(t, controller)

	product := models.Product{
		ID:       "doc-1",
		Name:     "Leite",
		Quantity: 2,
		Unity:    models.UnityLiter,
		Category: models.CategoryBeverage,
	}

	controller.notifyClients(UpdateAction{
		Type:      "CREATE",
		ProductID: product.ID,
		Payload: gin.H{
			"product": product,
		},
	})

	fields := readAction(t, conn)

	var actionType, productID string
	require.NoError(t, json.Unmarshal(fields["type"], &actionType))
	require.NoError(t, json.Unmarshal(fields["productId"], &productID))
	assert.Equal(t, "CREATE", actionType)
	assert.Equal(t, "doc-1", productID)

	var payload struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(fields["payload"], &payload))
	assert.Equal(t, product, payload.Product)
}

func TestNotifyClientsDeleteAction(t *testing.T) {
	controller := newWebSocketController()
	conn := dialWebSocket(t, controller)

	controller.notifyClients(UpdateAction{
		Type:      "DELETE",
		ProductID: "doc-1",
	})

	fields := readAction(t, conn)

	var actionType, productID string
	require.NoError(t, json.Unmarshal(fields["type"], &actionType))
	require.NoError(t, json.Unmarshal(fields["productId"], &productID))
	assert.Equal(t, "DELETE", actionType)
	assert.Equal(t, "doc-1", productID)

	// sem payload a remoção carrega null
	assert.Equal(t, "null", string(fields["payload"]))
}
