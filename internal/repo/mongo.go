package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Skotchmaster/pitipaw_catalog/internal/models"
)

const (
	productsCollection = "products"
	adminsCollection   = "admins"
)

// adminListProjection keeps password hashes out of listings.
var adminListProjection = bson.M{"password": 0}

type productDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description"`
	ImageURL    string             `bson:"image_url"`
}

func (d productDoc) model() models.Product {
	return models.Product{
		ID:          models.ID(d.ID.Hex()),
		Name:        d.Name,
		Price:       d.Price,
		Description: d.Description,
		ImageURL:    d.ImageURL,
	}
}

type adminDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password,omitempty"`
}

func (d adminDoc) model() models.Admin {
	return models.Admin{
		ID:           models.ID(d.ID.Hex()),
		Username:     d.Username,
		PasswordHash: d.Password,
	}
}

var _ Store = (*MongoRepo)(nil)

type MongoRepo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// OpenMongo connects and pings within ten seconds.
func OpenMongo(ctx context.Context, uri, database string) (*MongoRepo, error) {
	if database == "" {
		return nil, errors.New("mongo database name is empty")
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoRepo{Client: client, DB: client.Database(database)}, nil
}

func (r *MongoRepo) products() *mongo.Collection { return r.DB.Collection(productsCollection) }
func (r *MongoRepo) admins() *mongo.Collection   { return r.DB.Collection(adminsCollection) }

// EnsureSchema creates the unique username index; collections appear with it.
// Existing duplicate usernames block the index and are reported by name.
func (r *MongoRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.admins().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		names, derr := r.duplicateUsernames(ctx)
		if derr != nil {
			return fmt.Errorf("create username index: %w (listing duplicates: %v)", err, derr)
		}
		if len(names) > 0 {
			return duplicateUsernamesError(names)
		}
	}
	return fmt.Errorf("create username index: %w", err)
}

func (r *MongoRepo) duplicateUsernames(ctx context.Context) ([]string, error) {
	cur, err := r.admins().Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$username"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "count", Value: bson.D{{Key: "$gt", Value: 1}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	})
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Username string `bson:"_id"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Username)
	}
	return names, nil
}

func duplicateUsernamesError(names []string) error {
	return fmt.Errorf("%w: keep one admin per username and delete the rest: %s",
		ErrDuplicateUsernames, strings.Join(names, ", "))
}

func (r *MongoRepo) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx, nil)
}

func (r *MongoRepo) Close(ctx context.Context) error {
	return r.Client.Disconnect(ctx)
}

// objectID maps a malformed hex id to ErrNotFound; no document can have it.
func objectID(id models.ID) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

func (r *MongoRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	cur, err := r.products().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []productDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func (r *MongoRepo) GetProduct(ctx context.Context, id models.ID) (*models.Product, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc productDoc
	if err := r.products().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translateMongo(err)
	}
	p := doc.model()
	return &p, nil
}

func (r *MongoRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	doc := productDoc{
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
	res, err := r.products().InsertOne(ctx, doc)
	if err != nil {
		return translateMongo(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	p.ID = models.ID(oid.Hex())
	return nil
}

func (r *MongoRepo) UpdateProduct(ctx context.Context, id models.ID, fields map[string]any) (*models.Product, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return r.GetProduct(ctx, id)
	}

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	var doc productDoc
	err = r.products().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, translateMongo(err)
	}
	p := doc.model()
	return &p, nil
}

func (r *MongoRepo) DeleteProduct(ctx context.Context, id models.ID) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.products().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo) CountProducts(ctx context.Context) (int64, error) {
	return r.products().CountDocuments(ctx, bson.M{})
}

func (r *MongoRepo) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	cur, err := r.admins().Find(ctx, bson.M{}, options.Find().SetProjection(adminListProjection))
	if err != nil {
		return nil, err
	}
	var docs []adminDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]models.Admin, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func (r *MongoRepo) CreateAdmin(ctx context.Context, a *models.Admin) error {
	res, err := r.admins().InsertOne(ctx, adminDoc{Username: a.Username, Password: a.PasswordHash})
	if err != nil {
		return translateMongo(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	a.ID = models.ID(oid.Hex())
	return nil
}

func (r *MongoRepo) FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var doc adminDoc
	if err := r.admins().FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		return nil, translateMongo(err)
	}
	a := doc.model()
	return &a, nil
}

func (r *MongoRepo) DeleteAdmin(ctx context.Context, id models.ID) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.admins().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo) CountAdmins(ctx context.Context) (int64, error) {
	return r.admins().CountDocuments(ctx, bson.M{})
}

func translateMongo(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	}
	return err
}
