// utils/firebase.go
package utils

import (
	"context"
	"log"

	"voyago/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMClient delivers push notifications for booking and invoice events.
// Nil until FirebaseInit runs.
var FCMClient *messaging.Client

// FirebaseInit builds the Firebase app from the configured service account
// file and keeps its Messaging client for the notification service.
// Startup aborts when the credentials are missing or rejected.
func FirebaseInit() {
	ctx := context.Background()

	app, err := firebase.NewApp(ctx, nil,
		option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile))
	if err != nil {
		log.Fatalf("firebase: app init: %v", err)
	}

	FCMClient, err = app.Messaging(ctx)
	if err != nil {
		log.Fatalf("firebase: messaging client: %v", err)
	}
}
