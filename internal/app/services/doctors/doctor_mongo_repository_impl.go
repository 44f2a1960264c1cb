package doctors

import (
	"context"
	"regexp"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type doctorMongoRepository struct {
	collection *mongo.Collection
}

func NewDoctorMongoRepository(client *mongo.Client, dbName string) contracts.DoctorRepository {
	return &doctorMongoRepository{
		collection: client.Database(dbName).Collection(constvars.DoctorCollection),
	}
}

func (r *doctorMongoRepository) ReplaceAll(ctx context.Context, doctors []models.Doctor) error {
	if err := r.collection.Drop(ctx); err != nil {
		return exceptions.ErrMongoDBUpsertDocument(err)
	}
	if len(doctors) == 0 {
		return nil
	}
	documents := make([]interface{}, 0, len(doctors))
	for _, doctor := range doctors {
		documents = append(documents, doctor)
	}
	if _, err := r.collection.InsertMany(ctx, documents); err != nil {
		return exceptions.ErrMongoDBUpsertDocument(err)
	}
	return nil
}

func (r *doctorMongoRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return r.find(ctx, bson.M{})
}

func (r *doctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.collection.FindOne(ctx, bson.M{"_id": doctorID}).Decode(&doctor)
	if err == mongo.ErrNoDocuments {
		return nil, exceptions.ErrDoctorNotFound(doctorID)
	} else if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *doctorMongoRepository) FindBySpeciality(ctx context.Context, speciality string) ([]models.Doctor, error) {
	pattern := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(speciality) + "$", Options: "i"}
	return r.find(ctx, bson.M{"speciality": pattern})
}

func (r *doctorMongoRepository) Search(ctx context.Context, text string) ([]models.Doctor, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
	return r.find(ctx, bson.M{"speciality": pattern})
}

func (r *doctorMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Doctor, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	return doctors, nil
}
