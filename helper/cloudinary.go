package helper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"restaurant_manager/config"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const menuImageFolder = "restaurant/menu"

var cld *cloudinary.Cloudinary

// InitCloudinary configures image storage. Without credentials uploads are
// rejected and the rest of the service keeps working.
func InitCloudinary() {
	name := config.Config("CLOUDINARY_CLOUD_NAME")
	if name == "" {
		log.Println("Cloudinary not configured, menu image upload disabled")
		return
	}
	c, err := cloudinary.NewFromParams(
		name,
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Printf("Cloudinary init failed: %v", err)
		return
	}
	cld = c
}

// UploadMenuImage stores the image and returns its secure URL and public id.
func UploadMenuImage(ctx context.Context, itemId uint, file io.Reader) (string, string, error) {
	if cld == nil {
		return "", "", errors.New("image storage is not configured")
	}
	publicID := fmt.Sprintf("menu_%d_%d", itemId, time.Now().UnixNano())
	res, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       menuImageFolder,
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return "", "", err
	}
	return res.SecureURL, res.PublicID, nil
}

func DestroyImage(ctx context.Context, publicID string) {
	if cld == nil || publicID == "" {
		return
	}
	if _, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		log.Printf("Destroy image %s failed: %v", publicID, err)
	}
}

// ExtractPublicID recovers the public id from a Cloudinary delivery URL:
// https://res.cloudinary.com/<cloud>/image/upload/[v<version>/]<folder>/<id>.<ext>
// Non-Cloudinary URLs yield "".
func ExtractPublicID(url string) string {
	_, rest, ok := strings.Cut(url, "/upload/")
	if !ok || !strings.Contains(url, "res.cloudinary.com") {
		return ""
	}
	parts := strings.Split(rest, "/")
	if len(parts) > 1 && len(parts[0]) > 1 && parts[0][0] == 'v' && isDigits(parts[0][1:]) {
		parts = parts[1:]
	}
	publicID := strings.Join(parts, "/")
	return strings.TrimSuffix(publicID, filepath.Ext(publicID))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
