package domain

// Hero is a persisted hero record.
//
// Heroes carry no uniqueness constraints and no timestamps; they exist
// mainly as the simplest possible path through the repository/service/
// handler layering.
type Hero struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	SecretName string `json:"secret_name"`
	Age        *int   `json:"age"`
}
