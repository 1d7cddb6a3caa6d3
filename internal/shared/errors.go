package shared

import "errors"

// User-visible messages follow the export's locale. Everything the UI shows
// comes from this table; log lines stay English.
const (
	// MsgInvalidFileType shown when the upload is not an xlsx workbook.
	MsgInvalidFileType = "فایل انتخاب‌شده یک فایل اکسل معتبر نیست"
	// MsgDecodeFailed shown when the workbook cannot be read.
	MsgDecodeFailed = "خواندن فایل اکسل ممکن نشد"
	// MsgSchemaColumnMissing prefixes the name of the missing column.
	MsgSchemaColumnMissing = "ستون مورد نیاز در فایل یافت نشد: "
	// MsgNoMatchingRows shown when the applied filters match zero rows.
	MsgNoMatchingRows = "هیچ ردیفی با فیلترهای انتخاب‌شده مطابقت ندارد"
	// MsgCodeUnavailable marks a product whose code is not in the export.
	MsgCodeUnavailable = "کد ناموجود"
	// MsgUnexpected is the fallback for errors without a safe message.
	MsgUnexpected = "خطای غیرمنتظره‌ای رخ داد"
)

// UserMessenger is implemented by errors carrying a message safe to display.
type UserMessenger interface {
	UserMessage() string
}

// UserSafeMessage returns the user-visible message for err.
func UserSafeMessage(err error) string {
	var um UserMessenger
	if errors.As(err, &um) {
		return um.UserMessage()
	}
	return MsgUnexpected
}
