package validators

// Field names accepted by Validate.
const (
	FieldEncryptedTitle       = "encryptedTitle"
	FieldEncryptedDescription = "encryptedDescription"
	FieldEncryptedContent     = "encryptedContent"
	FieldAccessLevel          = "accessLevel"
	FieldStatus               = "status"
	FieldSecretType           = "secretType"
	FieldCategory             = "category"
	FieldPriority             = "priority"
)

// maxLabelLength caps plaintext labels such as secretType and category.
const maxLabelLength = 64

var (
	willFields = []string{
		FieldEncryptedContent,
		FieldAccessLevel,
		FieldStatus,
	}
	secretFields = []string{
		FieldEncryptedContent,
		FieldAccessLevel,
		FieldSecretType,
		FieldCategory,
		FieldPriority,
	}
)
