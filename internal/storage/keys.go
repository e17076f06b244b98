package storage

import "fmt"

// Photo keys are pure and deterministic: {resourceType}s/{parentId}/
// {resourceId?}/{file}.{ext}. The key is the only linkage between a
// relational row and its blob.

func UserPhotoKey(userID uint, ext string) string {
	return fmt.Sprintf("users/%d/photo.%s", userID, ext)
}

func PaymentPhotoKey(userID, paymentID uint, ext string) string {
	return fmt.Sprintf("payments/%d/%d/payment.%s", userID, paymentID, ext)
}

func PaymentRequestPhotoKey(requesterID, requestID uint, ext string) string {
	return fmt.Sprintf("payment_requests/%d/%d/payment_request.%s", requesterID, requestID, ext)
}

func RefundPhotoKey(userID, refundID uint, ext string) string {
	return fmt.Sprintf("refunds/%d/%d/refund.%s", userID, refundID, ext)
}

func TrainingThumbnailKey(trainingID uint, ext string) string {
	return fmt.Sprintf("trainings/%d/thumbnail.%s", trainingID, ext)
}

func ModuleThumbnailKey(moduleID uint, ext string) string {
	return fmt.Sprintf("modules/%d/thumbnail.%s", moduleID, ext)
}

func SubModuleThumbnailKey(subModuleID uint, ext string) string {
	return fmt.Sprintf("sub_modules/%d/thumbnail.%s", subModuleID, ext)
}

func LessonThumbnailKey(lessonID uint, ext string) string {
	return fmt.Sprintf("lessons/%d/thumbnail.%s", lessonID, ext)
}
