package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhotoKeys_Deterministic(t *testing.T) {
	assert.Equal(t, "payments/7/42/payment.png", PaymentPhotoKey(7, 42, "png"))
	assert.Equal(t, "payments/7/42/payment.png", PaymentPhotoKey(7, 42, "png"))
	assert.Equal(t, "payment_requests/3/9/payment_request.jpeg", PaymentRequestPhotoKey(3, 9, "jpeg"))
	assert.Equal(t, "refunds/1/2/refund.pdf", RefundPhotoKey(1, 2, "pdf"))
	assert.Equal(t, "users/15/photo.webp", UserPhotoKey(15, "webp"))
	assert.Equal(t, "trainings/4/thumbnail.png", TrainingThumbnailKey(4, "png"))
	assert.Equal(t, "modules/4/thumbnail.png", ModuleThumbnailKey(4, "png"))
	assert.Equal(t, "sub_modules/4/thumbnail.png", SubModuleThumbnailKey(4, "png"))
	assert.Equal(t, "lessons/4/thumbnail.png", LessonThumbnailKey(4, "png"))
}
