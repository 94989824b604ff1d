package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/fabihanawal/98hns/initializers"
	"github.com/fabihanawal/98hns/models"
	"github.com/gin-gonic/gin"
)

// getAWSUploader returns a configured S3 uploader for hero images.
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

func GetHeroImages(ctx *gin.Context) {
	var images []models.HeroImage
	if result := initializers.DB.Order("position ASC, id ASC").Find(&images); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch hero images", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"heroImages": images})
}

// AddHeroImage registers an already hosted image by URL.
func AddHeroImage(ctx *gin.Context) {
	var image models.HeroImage
	if err := ctx.ShouldBindJSON(&image); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&image).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to add hero image", err)
		return
	}

	ctx.JSON(http.StatusCreated, image)
}

// UploadHeroImages accepts multipart image files, pushes them to S3 and
// registers the resulting public URLs as hero slides.
func UploadHeroImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
		return
	}

	bucket := os.Getenv("HERO_IMAGE_BUCKET")
	if bucket == "" {
		respondWithError(ctx, http.StatusInternalServerError, "Missing hero image bucket configuration", nil)
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	var uploadedUrls []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Unique key prevents slides overwriting each other
		uniqueFilename := fmt.Sprintf("hero-%s-%s", time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedUrls = append(uploadedUrls, result.Location)

		heroImage := models.HeroImage{Url: result.Location}
		if err := initializers.DB.Create(&heroImage).Error; err != nil {
			// The file is already in the bucket, so just log this
			log.Printf("Error saving hero image to database: %v", err)
		}
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}

	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	ctx.JSON(http.StatusOK, response)
}

func DeleteHeroImage(ctx *gin.Context) {
	imageId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid hero image ID", err)
		return
	}

	if result := initializers.DB.Delete(&models.HeroImage{}, imageId); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete hero image", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Hero image deleted successfully"})
}
