package firebase

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// App holds the initialized Firebase app and the clients the triggers use.
type App struct {
	FirebaseApp     *firebase.App
	FirestoreClient *firestore.Client
	MessagingClient *messaging.Client
}

// InitFirebase initializes the Firebase application with its Firestore and Messaging clients.
// An empty credentialsPath falls back to application default credentials.
func InitFirebase(ctx context.Context, credentialsPath, projectID string, logger *zap.Logger) (*App, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("firebase credentials file not found at %s", credentialsPath)
		}
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var cfg *firebase.Config
	if projectID != "" {
		cfg = &firebase.Config{ProjectID: projectID}
	}

	firebaseApp, err := firebase.NewApp(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firestore client: %w", err)
	}

	messagingClient, err := firebaseApp.Messaging(ctx)
	if err != nil {
		_ = firestoreClient.Close()
		return nil, fmt.Errorf("error getting messaging client: %w", err)
	}

	logger.Info("Firebase app, firestore and messaging clients initialized",
		zap.Bool("default_credentials", credentialsPath == ""))
	return &App{
		FirebaseApp:     firebaseApp,
		FirestoreClient: firestoreClient,
		MessagingClient: messagingClient,
	}, nil
}

// Close releases the Firestore connection.
func (a *App) Close() error {
	if a.FirestoreClient == nil {
		return nil
	}
	return a.FirestoreClient.Close()
}
