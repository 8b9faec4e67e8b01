package content

// Message keys shared by handlers and the flash slot.
const (
	MsgProductsLoadFailed   = "products_load_failed"
	MsgContactSent          = "contact_sent"
	MsgContactFailed        = "contact_failed"
	MsgContactRequired      = "contact_required"
	MsgContactInvalidEmail  = "contact_invalid_email"
	MsgProductAdded         = "product_added"
	MsgProductUpdated       = "product_updated"
	MsgProductDeleted       = "product_deleted"
	MsgProductAddFailed     = "product_add_failed"
	MsgProductUpdateFailed  = "product_update_failed"
	MsgProductDeleteFailed  = "product_delete_failed"
	MsgProductRequired      = "product_required"
	MsgContactDeleted       = "contact_deleted"
	MsgContactDeleteFailed  = "contact_delete_failed"
	MsgBrochureUploaded     = "brochure_uploaded"
	MsgBrochureUploadFailed = "brochure_upload_failed"
	MsgBrochureDeleted      = "brochure_deleted"
	MsgBrochureDeleteFailed = "brochure_delete_failed"
	MsgBrochureNotPDF       = "brochure_not_pdf"
	MsgBrochureTooLarge     = "brochure_too_large"
	MsgBrochureMissing      = "brochure_missing"
	MsgBrochureDownload     = "brochure_download_failed"
	MsgLoginFailed          = "login_failed"
	MsgLoginRequired        = "login_required"
	MsgPreviewFailed        = "preview_failed"
	MsgExportFailed         = "export_failed"
	MsgGenericError         = "generic_error"
	MsgNotFound             = "not_found"
)

// MessageKeys lists every key both tables must define.
var MessageKeys = []string{
	MsgProductsLoadFailed, MsgContactSent, MsgContactFailed, MsgContactRequired,
	MsgContactInvalidEmail,
	MsgProductAdded, MsgProductUpdated, MsgProductDeleted, MsgProductAddFailed,
	MsgProductUpdateFailed, MsgProductDeleteFailed, MsgProductRequired,
	MsgContactDeleted, MsgContactDeleteFailed, MsgBrochureUploaded,
	MsgBrochureUploadFailed, MsgBrochureDeleted, MsgBrochureDeleteFailed,
	MsgBrochureNotPDF, MsgBrochureTooLarge, MsgBrochureMissing, MsgBrochureDownload,
	MsgLoginFailed, MsgLoginRequired, MsgPreviewFailed, MsgExportFailed,
	MsgGenericError, MsgNotFound,
}
