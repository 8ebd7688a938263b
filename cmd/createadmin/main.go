package main

import (
	"context"
	"flag"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	config "github.com/viennasultans/club-sync/pkg/config"
	docstore "github.com/viennasultans/club-sync/repos/docstore"
	identity "github.com/viennasultans/club-sync/repos/identity"
	mailer "github.com/viennasultans/club-sync/repos/mailer"
)

// Bootstraps the single admin account. Refuses to run when one exists.
func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	ctx := context.Background()
	cfg := config.Load()

	credentialsOption := option.WithCredentialsJSON([]byte(cfg.CredentialsJSON))

	firestoreClient, err := firestore.NewClient(ctx, cfg.ProjectID, credentialsOption)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	firebaseApp, err := firebase.NewApp(ctx, nil, credentialsOption)
	if err != nil {
		log.Fatalf("error initializing app: %v\n", err)
	}

	storeService := docstore.NewService(firestoreClient)
	identityService, err := identity.NewService(ctx, firebaseApp, storeService, mailer.NewService(), cfg.WebAPIKey)
	if err != nil {
		log.Fatalf("error initializing identity gateway: %v\n", err)
	}

	user, err := identityService.Signup(ctx, *email, *password)
	if err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Admin user created successfully: %s (uid %s)\n", user.Email, user.UID)
}
