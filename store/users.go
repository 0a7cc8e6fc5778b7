package store

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
)

// ActorFromRecord rebuilds an actor value from its record.
func ActorFromRecord(r *core.Record) services.Actor {
	return services.Actor{
		ID:       r.Id,
		Username: r.GetString("username"),
		Name:     r.GetString("name"),
		Role:     r.GetString("role"),
	}
}

// GetActor fetches one user by record id.
func GetActor(app *pocketbase.PocketBase, id string) (services.Actor, error) {
	record, err := app.FindRecordById("app_users", id)
	if err != nil {
		return services.Actor{}, ErrNotFound
	}
	return ActorFromRecord(record), nil
}

// FindUserByCredentials resolves a username/password pair to its actor.
func FindUserByCredentials(app *pocketbase.PocketBase, username, password string) (services.Actor, error) {
	record, err := app.FindFirstRecordByData("app_users", "username", username)
	if err != nil {
		return services.Actor{}, ErrNotFound
	}
	if record.GetString("password") != password {
		return services.Actor{}, ErrNotFound
	}
	return ActorFromRecord(record), nil
}

// ListUsers returns every user account, oldest first.
func ListUsers(app *pocketbase.PocketBase) ([]services.Actor, error) {
	records, err := app.FindRecordsByFilter("app_users", "id != ''", "created", 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]services.Actor, 0, len(records))
	for _, r := range records {
		users = append(users, ActorFromRecord(r))
	}
	return users, nil
}

// CreateUser inserts a new account and returns its actor.
func CreateUser(app *pocketbase.PocketBase, username, password, name, role string) (services.Actor, error) {
	if existing, err := app.FindFirstRecordByData("app_users", "username", username); err == nil && existing != nil {
		return services.Actor{}, fmt.Errorf("username %q already taken", username)
	}

	col, err := app.FindCollectionByNameOrId("app_users")
	if err != nil {
		return services.Actor{}, fmt.Errorf("find app_users collection: %w", err)
	}
	record := core.NewRecord(col)
	record.Set("username", username)
	record.Set("password", password)
	record.Set("name", name)
	record.Set("role", role)
	if err := app.Save(record); err != nil {
		return services.Actor{}, fmt.Errorf("save user %q: %w", username, err)
	}
	return ActorFromRecord(record), nil
}

// DeleteUser removes an account by id. Absent ids are a no-op.
func DeleteUser(app *pocketbase.PocketBase, id string) error {
	record, err := app.FindRecordById("app_users", id)
	if err != nil {
		return nil
	}
	if err := app.Delete(record); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}
