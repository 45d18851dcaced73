package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ripple/internal/core/post"
	postPort "ripple/internal/ports/post"
)

// PostRepositoryMongo implements PostRepository on a mongo collection.
// All like/comment mutations are conditional FindOneAndUpdate calls: the
// filter carries the precondition, so the check and the write happen in
// one atomic step on the server. A non-matching filter is classified
// afterwards into the right domain error.
type PostRepositoryMongo struct {
	coll *mongo.Collection
}

func NewPostRepositoryMongo(coll *mongo.Collection) *PostRepositoryMongo {
	return &PostRepositoryMongo{coll: coll}
}

func (repo *PostRepositoryMongo) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.Likes == nil {
		p.Likes = []post.Like{}
	}
	if p.Comments == nil {
		p.Comments = []post.Comment{}
	}
	if _, err := repo.coll.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("inserting post: %w", err)
	}
	return p, nil
}

func (repo *PostRepositoryMongo) FindByID(ctx context.Context, id string) (*post.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, postPort.ErrPostNotFound
	}
	var p post.Post
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, postPort.ErrPostNotFound
		}
		return nil, fmt.Errorf("finding post %s: %w", id, err)
	}
	return &p, nil
}

func (repo *PostRepositoryMongo) FindAll(ctx context.Context) ([]*post.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	defer cur.Close(ctx)

	posts := []*post.Post{}
	for cur.Next(ctx) {
		var p post.Post
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decoding post: %w", err)
		}
		posts = append(posts, &p)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return posts, nil
}

func (repo *PostRepositoryMongo) Delete(ctx context.Context, id, authorID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return postPort.ErrPostNotFound
	}
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return postPort.ErrNotOwner
	}

	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid, "author": author})
	if err != nil {
		return fmt.Errorf("deleting post %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		// Either the post is gone or the caller is not the author.
		if _, err := repo.FindByID(ctx, id); err != nil {
			return err
		}
		return postPort.ErrNotOwner
	}
	return nil
}

func (repo *PostRepositoryMongo) AddLike(ctx context.Context, id string, like post.Like) (*post.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, postPort.ErrPostNotFound
	}

	filter := bson.M{"_id": oid, "likes.user": bson.M{"$ne": like.User}}
	update := bson.M{"$push": bson.M{"likes": bson.M{
		"$each":     []post.Like{like},
		"$position": 0,
	}}}

	updated, err := repo.findOneAndUpdate(ctx, filter, update)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("liking post %s: %w", id, err)
	}
	if _, err := repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, postPort.ErrAlreadyLiked
}

func (repo *PostRepositoryMongo) RemoveLike(ctx context.Context, id, userID string) (*post.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, postPort.ErrPostNotFound
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, postPort.ErrNotLiked
	}

	filter := bson.M{"_id": oid, "likes.user": uid}
	update := bson.M{"$pull": bson.M{"likes": bson.M{"user": uid}}}

	updated, err := repo.findOneAndUpdate(ctx, filter, update)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("unliking post %s: %w", id, err)
	}
	if _, err := repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, postPort.ErrNotLiked
}

func (repo *PostRepositoryMongo) AddComment(ctx context.Context, id string, c post.Comment) (*post.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, postPort.ErrPostNotFound
	}

	filter := bson.M{"_id": oid}
	update := bson.M{"$push": bson.M{"comments": bson.M{
		"$each":     []post.Comment{c},
		"$position": 0,
	}}}

	updated, err := repo.findOneAndUpdate(ctx, filter, update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, postPort.ErrPostNotFound
		}
		return nil, fmt.Errorf("commenting on post %s: %w", id, err)
	}
	return updated, nil
}

func (repo *PostRepositoryMongo) RemoveComment(ctx context.Context, id, commentID, authorID string) (*post.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, postPort.ErrPostNotFound
	}
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, postPort.ErrNotOwner
	}

	// The filter asserts ownership and the pull targets the comment id,
	// so the removal is both authorized and addressed by identifier in a
	// single server-side step.
	filter := bson.M{"_id": oid, "comments": bson.M{"$elemMatch": bson.M{
		"id":     commentID,
		"author": author,
	}}}
	update := bson.M{"$pull": bson.M{"comments": bson.M{"id": commentID}}}

	updated, err := repo.findOneAndUpdate(ctx, filter, update)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("removing comment %s from post %s: %w", commentID, id, err)
	}

	p, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, c := range p.Comments {
		if c.ID == commentID {
			return nil, postPort.ErrNotOwner
		}
	}
	return nil, postPort.ErrCommentNotFound
}

func (repo *PostRepositoryMongo) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*post.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p post.Post
	if err := repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
