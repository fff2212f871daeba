// Package archive keeps identity-provider records in PostgreSQL as their
// wire JSON, one JSONB row per record, so exported users and pool clients
// can be stored, reloaded and queried by wire member name.
//
//	store, err := archive.New(ctx, dsn)
//	users := archive.Collection(store, "users", model.UserTypeTable, func(u *model.UserType) string {
//		return aws.ToString(u.Username)
//	})
//	version, err := users.Put(ctx, user)
//	confirmed, err := users.Where("UserStatus", "=", model.UserStatusConfirmed).Execute(ctx)
package archive
