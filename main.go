package main

import (
	"context"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"

	auth "github.com/viennasultans/club-sync/pkg/auth"
	config "github.com/viennasultans/club-sync/pkg/config"

	blobstore "github.com/viennasultans/club-sync/repos/blobstore"
	docstore "github.com/viennasultans/club-sync/repos/docstore"
	identity "github.com/viennasultans/club-sync/repos/identity"
	mailer "github.com/viennasultans/club-sync/repos/mailer"

	accounts "github.com/viennasultans/club-sync/services/accounts"
	players "github.com/viennasultans/club-sync/services/players"
	roster "github.com/viennasultans/club-sync/services/roster"
	site "github.com/viennasultans/club-sync/services/site"
)

const loginPath = "/auth/v1/login"

func main() {
	ctx := context.Background()

	cfg := config.Load()

	credentialsOption := option.WithCredentialsJSON([]byte(cfg.CredentialsJSON))

	firestoreClient, err := firestore.NewClient(ctx, cfg.ProjectID, credentialsOption)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	firebaseApp, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: cfg.StorageBucket}, credentialsOption)
	if err != nil {
		log.Fatalf("error initializing app: %v\n", err)
	}

	storageClient, err := firebaseApp.Storage(ctx)
	if err != nil {
		log.Fatalf("error initializing storage: %v\n", err)
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		log.Fatalf("error getting storage bucket: %v\n", err)
	}

	storeService := docstore.NewService(firestoreClient)
	fileService := blobstore.NewService(bucket, cfg.StorageBucket)
	mailerService := mailer.NewService()

	identityService, err := identity.NewService(ctx, firebaseApp, storeService, mailerService, cfg.WebAPIKey)
	if err != nil {
		log.Fatalf("error initializing identity gateway: %v\n", err)
	}

	playersService := players.NewPlayersService(storeService, fileService)
	rosterService := roster.NewRosterService(storeService)
	siteService := site.NewSiteService(storeService)
	accountsService := accounts.NewAccountsService(identityService)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.AllowOrigins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}

	router := gin.Default()
	router.Use(cors.New(corsConfig))

	siteRouter := router.Group("/site/v1")

	authRouter := router.Group("/auth/v1")

	adminRouter := router.Group("/admin/v1")
	adminRouter.Use(auth.Middleware(identityService, loginPath)) // Apply the middleware here

	roster.NewHTTPHandler(roster.HTTPOptions{
		Service: rosterService,
		Router:  siteRouter,
	})

	site.NewHTTPHandler(site.HTTPOptions{
		Service: siteService,
		Router:  siteRouter,
	})

	accounts.NewHTTPHandler(accounts.HTTPOptions{
		Service:   accountsService,
		Router:    authRouter,
		AdminPath: "/admin/v1/players",
	})

	players.NewHTTPHandler(players.HTTPOptions{
		Service: playersService,
		Router:  adminRouter,
	})

	log.Fatal(router.Run(":" + cfg.Port))
}
