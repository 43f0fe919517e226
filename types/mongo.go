package types

// StoredDocument is the record kept for every uploaded PDF. The extracted
// text is stored alongside the metadata so that summary/quiz/QA requests
// can be served without re-downloading the file.
type StoredDocument struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	UserID     string    `json:"user_id" bson:"user_id"`
	Title      string    `json:"title" bson:"title"`
	StorageKey string    `json:"storage_key" bson:"storage_key"`
	PublicURL  string    `json:"public_url" bson:"public_url"`
	Pages      int       `json:"pages" bson:"pages"`
	Chars      int       `json:"chars" bson:"chars"`
	Text       string    `json:"-" bson:"text"`
	Chapters   []Chapter `json:"chapters" bson:"chapters"`
	CreateAt   int64     `json:"created_at" bson:"created_at"`
}

type User struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Username string `json:"username" bson:"username"`
	Password string `json:"password" bson:"password"`
	FullName string `json:"full_name" bson:"full_name"`
	CreateAt int64  `json:"created_at" bson:"created_at"`
}
