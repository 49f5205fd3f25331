package dto

import (
	"phototagger/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Provider:  user.Provider,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}

func PhotoToPhotoRecordResponse(photo *models.Photo) *PhotoRecordResponse {
	if photo == nil {
		return nil
	}
	return &PhotoRecordResponse{
		GooglePhotoID: photo.GooglePhotoID,
		Filename:      photo.Filename,
		Size:          photo.Size,
		MimeType:      photo.MimeType,
		UploadedAt:    photo.UploadedAt,
		Description:   photo.Description,
		CustomTags:    photo.CustomTags,
		Status:        string(photo.Status),
	}
}

func SlideshowToSlideshowResponse(slideshow *models.Slideshow) *SlideshowResponse {
	if slideshow == nil {
		return nil
	}
	return &SlideshowResponse{
		SlideshowID: slideshow.SlideshowID,
		Name:        slideshow.Name,
		PhotoIDs:    slideshow.PhotoIDs,
		PhotoURLs:   slideshow.PhotoURLs,
		CreatedAt:   slideshow.CreatedAt,
	}
}

func SlideshowsToSlideshowResponses(slideshows []models.Slideshow) []SlideshowResponse {
	responses := make([]SlideshowResponse, len(slideshows))
	for i := range slideshows {
		responses[i] = *SlideshowToSlideshowResponse(&slideshows[i])
	}
	return responses
}

func GalleryImageToResponse(image *models.GalleryImage) *GalleryImageResponse {
	if image == nil {
		return nil
	}
	return &GalleryImageResponse{
		Title:       image.Title,
		Description: image.Description,
		ImageURL:    image.ImageURL,
		CreatedAt:   image.CreatedAt,
	}
}

func GalleryImagesToResponses(images []models.GalleryImage) []GalleryImageResponse {
	responses := make([]GalleryImageResponse, len(images))
	for i := range images {
		responses[i] = *GalleryImageToResponse(&images[i])
	}
	return responses
}
