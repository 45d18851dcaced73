package post

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is one document in the posts collection. Likes and comments are
// embedded arrays kept newest-first; every mutation on them goes through
// a conditional update, never a whole-document save.
type Post struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Author       primitive.ObjectID `bson:"author" json:"author"`
	AuthorName   string             `bson:"authorName" json:"authorName"`
	AuthorAvatar string             `bson:"authorAvatar" json:"authorAvatar"`
	Text         string             `bson:"text" json:"text"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	Likes        []Like             `bson:"likes" json:"likes"`
	Comments     []Comment          `bson:"comments" json:"comments"`
}

// Like marks a single user's endorsement. A user appears at most once
// per post.
type Like struct {
	User primitive.ObjectID `bson:"user" json:"user"`
}

// Comment is an embedded reply. The author snapshot fields are copied
// from the profile at creation time and never refreshed.
type Comment struct {
	ID           string             `bson:"id" json:"id"`
	Author       primitive.ObjectID `bson:"author" json:"author"`
	AuthorName   string             `bson:"authorName" json:"authorName"`
	AuthorAvatar string             `bson:"authorAvatar" json:"authorAvatar"`
	Text         string             `bson:"text" json:"text"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
