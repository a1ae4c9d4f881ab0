package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a chat message in a team room. Messages are immutable; there is
// no edit or delete operation.
type Message struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID        primitive.ObjectID `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	SenderID      primitive.ObjectID `json:"senderId" bson:"senderId" example:"507f1f77bcf86cd799439013"`
	SenderName    string             `json:"senderName" bson:"senderName" example:"John Doe"`
	Content       string             `json:"content" bson:"content" example:"Standup in five minutes"`
	AttachmentKey string             `json:"attachmentKey,omitempty" bson:"attachmentKey,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

// CreateMessageRequest is the payload for posting a chat message.
type CreateMessageRequest struct {
	Content       string `json:"content" binding:"required,min=1,max=4000" example:"Standup in five minutes"`
	AttachmentKey string `json:"attachmentKey" binding:"omitempty,max=512"`
}

// MessageListResponse is the response for listing chat messages.
type MessageListResponse struct {
	Items []Message `json:"items"`
}

// AttachmentUploadRequest is the payload for requesting an attachment
// upload URL.
type AttachmentUploadRequest struct {
	Filename    string `json:"filename" binding:"required,max=255" example:"notes.pdf"`
	ContentType string `json:"contentType" binding:"required,max=128" example:"application/pdf"`
}

// AttachmentUploadResponse carries a presigned upload URL and the object key
// the client should reference when posting the message.
type AttachmentUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
}

// AttachmentDownloadResponse carries a presigned download URL.
type AttachmentDownloadResponse struct {
	DownloadURL string `json:"downloadUrl"`
}
