package contact

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CollectionMessages is the document collection holding contact submissions.
const CollectionMessages = "contact_messages"

// DefaultDivision is recorded when a submission does not name a division.
const DefaultDivision = "General"

// Divisions are the business units an inquiry can be addressed to.
var Divisions = []string{
	"Xposition",
	"Noos",
	"Blaide Research",
	"Blaide Labs",
	"Blaide Foundry",
	DefaultDivision,
}

// Message is one inbound inquiry stored in the contact_messages collection.
//
// CreatedAt is assigned by the storage layer at write time, never by the
// client, to keep ordering consistent regardless of client clock skew.
// IsRead starts false and is flipped to true only by the admin console.
type Message struct {
	ID        bson.ObjectID `bson:"_id,omitempty"   json:"id"`
	Name      string        `bson:"name"            json:"name"`
	Email     string        `bson:"email"           json:"email"`
	Phone     string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Division  string        `bson:"division"        json:"division"`
	Message   string        `bson:"message"         json:"message"`
	CreatedAt time.Time     `bson:"created_at"      json:"created_at"`
	IsRead    bool          `bson:"is_read"         json:"is_read"`
}
