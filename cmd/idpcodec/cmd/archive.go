package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/ripkitten-co/idpcodec/archive"
	"github.com/ripkitten-co/idpcodec/codec"
	"github.com/ripkitten-co/idpcodec/model"
	"github.com/spf13/cobra"
)

// DSNEnv is read when --dsn is not given.
const DSNEnv = "IDPCODEC_DSN"

type archiveFlags struct {
	dsn        string
	collection string
}

func newArchiveCmd() *cobra.Command {
	var flags archiveFlags

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Store decoded records in PostgreSQL",
	}
	cmd.PersistentFlags().StringVar(&flags.dsn, "dsn", "", "PostgreSQL connection string (default $"+DSNEnv+")")
	cmd.PersistentFlags().StringVar(&flags.collection, "collection", "", "Collection name (default depends on the record type)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "users [file]",
			Short: "Archive the users of a ListUsers response",
			Long: `Decode a ListUsers response and upsert every user, keyed by username,
in one transaction.

Example:
  idpcodec archive users page1.json --dsn postgres://localhost/idp`,
			Args: cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				list, err := decodeFile(cmd, args, model.ListUsersOutputTable)
				if err != nil {
					return err
				}
				return archiveRecords(cmd, flags, "users", model.UserTypeTable, list.Users,
					func(u *model.UserType) string { return aws.ToString(u.Username) })
			},
		},
		&cobra.Command{
			Use:   "client [file]",
			Short: "Archive the pool client of a DescribeUserPoolClient response",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				described, err := decodeFile(cmd, args, model.DescribeUserPoolClientOutputTable)
				if err != nil {
					return err
				}
				if described.UserPoolClient == nil {
					return errors.New("response has no UserPoolClient")
				}
				return archiveRecords(cmd, flags, "clients", model.UserPoolClientTypeTable,
					[]*model.UserPoolClientType{described.UserPoolClient},
					func(c *model.UserPoolClientType) string { return aws.ToString(c.ClientId) })
			},
		},
	)
	return cmd
}

func decodeFile[R any](cmd *cobra.Command, args []string, table *codec.Struct[R]) (*R, error) {
	data, err := readInput(cmd, args, 0)
	if err != nil {
		return nil, err
	}
	return codec.Unmarshal(table, data)
}

func (f archiveFlags) resolve(defaultCollection string) (dsn, collection string, err error) {
	dsn = f.dsn
	if dsn == "" {
		dsn = os.Getenv(DSNEnv)
	}
	if dsn == "" {
		return "", "", fmt.Errorf("no connection string: set --dsn or $%s", DSNEnv)
	}
	collection = f.collection
	if collection == "" {
		collection = defaultCollection
	}
	return dsn, collection, nil
}

func archiveRecords[T any](cmd *cobra.Command, flags archiveFlags, defaultCollection string, table *codec.Struct[T], recs []*T, key func(*T) string) error {
	a, err := appFrom(cmd)
	if err != nil {
		return err
	}
	dsn, name, err := flags.resolve(defaultCollection)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	store, err := archive.New(ctx, dsn, archive.WithLogger(a.logger))
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := putAll(ctx, store, name, table, recs, key)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "archived %d records in %s\n", n, name)
	return err
}

func putAll[T any](ctx context.Context, store *archive.Store, name string, table *codec.Struct[T], recs []*T, key func(*T) string) (int, error) {
	sess, err := store.Session(ctx)
	if err != nil {
		return 0, err
	}
	defer sess.Close(ctx)

	if err := archive.Collection(sess, name, table, key).PutMany(ctx, recs); err != nil {
		return 0, err
	}
	if err := sess.Commit(ctx); err != nil {
		return 0, err
	}
	return len(recs), nil
}
