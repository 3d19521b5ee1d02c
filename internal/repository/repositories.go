package repository

import (
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"weddingplanner/internal/model"
)

// Repositories bundles the user store and one record store per resource kind,
// all served by the same backend.
type Repositories struct {
	Users   UserRepository
	Budgets RecordRepository[model.Budget]
	Guests  RecordRepository[model.Guest]
	Vendors RecordRepository[model.Vendor]
	Tasks   RecordRepository[model.Task]
	Venues  RecordRepository[model.Venue]
}

// NewGormRepositories wires every repository to a SQL database.
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(db),
		Budgets: NewGormRecordRepository[model.Budget](db),
		Guests:  NewGormRecordRepository[model.Guest](db),
		Vendors: NewGormRecordRepository[model.Vendor](db),
		Tasks:   NewGormRecordRepository[model.Task](db),
		Venues:  NewGormRecordRepository[model.Venue](db),
	}
}

// NewRedisRepositories wires every repository to a Redis server.
func NewRedisRepositories(client *redis.Client) *Repositories {
	return &Repositories{
		Users:   NewRedisUserRepository(client),
		Budgets: NewRedisRecordRepository[model.Budget](client),
		Guests:  NewRedisRecordRepository[model.Guest](client),
		Vendors: NewRedisRecordRepository[model.Vendor](client),
		Tasks:   NewRedisRecordRepository[model.Task](client),
		Venues:  NewRedisRecordRepository[model.Venue](client),
	}
}

// NewMongoRepositories wires every repository to a MongoDB database.
func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:   NewMongoUserRepository(db),
		Budgets: NewMongoRecordRepository[model.Budget](db),
		Guests:  NewMongoRecordRepository[model.Guest](db),
		Vendors: NewMongoRecordRepository[model.Vendor](db),
		Tasks:   NewMongoRecordRepository[model.Task](db),
		Venues:  NewMongoRecordRepository[model.Venue](db),
	}
}
