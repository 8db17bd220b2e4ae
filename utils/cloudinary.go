package utils

import (
	"fmt"

	"voyago/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/spf13/viper"
)

// loadCloudinaryConfig reads the Cloudinary credentials file into viper.
// The documentKey entry is the AES key for invoice document encryption and
// is read separately by the invoice handler. Credentials get no defaults,
// so a missing key surfaces in the empty-credential check below.
func loadCloudinaryConfig() error {
	viper.SetConfigFile("utils/cloudinary.yaml")
	viper.SetConfigType("yaml")
	viper.SetDefault("cloudinary.documentKey", "")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("cloudinary: reading credentials file: %w", err)
	}
	return nil
}

// Cloudinary builds the Cloudinary-backed StorageService from the loaded
// credentials.
func Cloudinary() (storage.StorageService, error) {
	if err := loadCloudinaryConfig(); err != nil {
		return nil, err
	}

	cloudName := viper.GetString("cloudinary.cloudName")
	apiKey := viper.GetString("cloudinary.apiKey")
	apiSecret := viper.GetString("cloudinary.apiSecret")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary: credentials missing from configuration")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: client init: %w", err)
	}

	return storage.NewStorageService(cld, cloudName, apiSecret), nil
}
