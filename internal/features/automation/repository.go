package automation

import (
	"context"
	"time"

	"autoflow/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AutomationRepository interface {
	Create(ctx context.Context, auto *Automation) error
	GetByID(ctx context.Context, id string) (*Automation, error)
	List(ctx context.Context) ([]Automation, error)
	ListScheduled(ctx context.Context) ([]Automation, error)
	Update(ctx context.Context, auto *Automation) error
	Delete(ctx context.Context, id string) error
	SetEnabled(ctx context.Context, id string, enabled bool) error

	// Counter operations are single atomic updates so concurrent runs of the
	// same automation never lose increments.
	MarkRun(ctx context.Context, id primitive.ObjectID, at time.Time) error
	MarkSuccess(ctx context.Context, id primitive.ObjectID) error
	MarkFailure(ctx context.Context, id primitive.ObjectID) error

	// Run log operations
	CreateRunLog(ctx context.Context, log *RunLog) error
	GetRunLogs(ctx context.Context, automationID string, limit int) ([]RunLog, error)
}

type AutomationRepositoryImpl struct {
	collection    *mongo.Collection
	logCollection *mongo.Collection
}

func NewAutomationRepository(mongodb *database.MongodbDB) AutomationRepository {
	return &AutomationRepositoryImpl{
		collection:    mongodb.DB.Collection("automations"),
		logCollection: mongodb.DB.Collection("automation_run_logs"),
	}
}

func (r *AutomationRepositoryImpl) Create(ctx context.Context, auto *Automation) error {
	auto.ID = primitive.NewObjectID()
	auto.CreatedAt = time.Now()
	auto.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, auto)
	return err
}

func (r *AutomationRepositoryImpl) GetByID(ctx context.Context, id string) (*Automation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var auto Automation
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&auto)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &auto, nil
}

func (r *AutomationRepositoryImpl) List(ctx context.Context) ([]Automation, error) {
	return r.find(ctx, bson.M{})
}

// ListScheduled returns enabled automations carrying at least one
// schedule-type trigger.
func (r *AutomationRepositoryImpl) ListScheduled(ctx context.Context) ([]Automation, error) {
	return r.find(ctx, bson.M{"enabled": true, "triggers.type": TriggerSchedule})
}

func (r *AutomationRepositoryImpl) find(ctx context.Context, filter bson.M) ([]Automation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var autos []Automation
	if err = cursor.All(ctx, &autos); err != nil {
		return nil, err
	}
	if autos == nil {
		autos = []Automation{}
	}
	return autos, nil
}

func (r *AutomationRepositoryImpl) Update(ctx context.Context, auto *Automation) error {
	auto.UpdatedAt = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": auto.ID}, bson.M{"$set": auto})
	return err
}

func (r *AutomationRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *AutomationRepositoryImpl) SetEnabled(ctx context.Context, id string, enabled bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"enabled": enabled, "updated_at": time.Now()},
	})
	return err
}

func (r *AutomationRepositoryImpl) MarkRun(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"run_count": 1},
		"$set": bson.M{"last_run": at, "updated_at": time.Now()},
	})
	return err
}

func (r *AutomationRepositoryImpl) MarkSuccess(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"success_count": 1},
	})
	return err
}

func (r *AutomationRepositoryImpl) MarkFailure(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"failure_count": 1},
	})
	return err
}

func (r *AutomationRepositoryImpl) CreateRunLog(ctx context.Context, log *RunLog) error {
	log.ID = primitive.NewObjectID()
	log.CreatedAt = time.Now()
	_, err := r.logCollection.InsertOne(ctx, log)
	return err
}

func (r *AutomationRepositoryImpl) GetRunLogs(ctx context.Context, automationID string, limit int) ([]RunLog, error) {
	oid, err := primitive.ObjectIDFromHex(automationID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "start_time", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.logCollection.Find(ctx, bson.M{"automation_id": oid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []RunLog
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []RunLog{}
	}
	return logs, nil
}
