package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"shop-list-api/config"
	"shop-list-api/controllers"
	"shop-list-api/identity"
	"shop-list-api/repositories"
	"shop-list-api/routes"
	"shop-list-api/services"
	"shop-list-api/store"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Erro ao inicializar logger: %v", err)
	}
	defer logger.Sync()

	firestoreClient, err := config.InitFirebase(cfg)
	if err != nil {
		logger.Fatal("Erro ao inicializar Firebase", zap.Error(err))
	}
	defer firestoreClient.Close()

	// Identificador anônimo estável desta instalação; em caso de falha
	// de armazenamento o serviço segue com escopo vazio, sem derrubar o
	// processo
	provider := identity.NewProvider(identity.NewFileStorage(cfg.DataDir))
	userID, err := provider.GetOrCreateUserID()
	if err != nil {
		logger.Error("Erro ao resolver o identificador anônimo", zap.Error(err))
	}

	listStore := store.NewProductListStore()
	repo := repositories.NewProductRepository(firestoreClient, cfg.ProductsCollection, logger)
	service := services.NewProductService(listStore, repo, userID, logger)

	if err := service.Load(context.Background()); err != nil {
		// carga inicial falhou; a lista fica vazia até o próximo restart
		logger.Error("Erro na carga inicial dos produtos", zap.Error(err))
	}

	controller := controllers.NewProductController(service, firestoreClient, cfg.ProductsCollection, logger)

	r := routes.SetupRouter(controller)

	logger.Info("Servidor rodando 🚀", zap.String("porta", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Erro no servidor HTTP", zap.Error(err))
	}
}
