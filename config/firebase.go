package config

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

func InitFirebase(cfg Config) (*firestore.Client, error) {
	ctx := context.Background()

	// Configura o Firebase
	opt := option.WithCredentialsFile(cfg.CredentialsFile)

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opt)
	if err != nil {
		return nil, err
	}

	// Inicializa o Firestore
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, err
	}

	log.Println("Firestore inicializado com sucesso")
	return client, nil
}
