package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-motors/models"
	sq "github.com/Masterminds/squirrel"
)

// psql renders queries with PostgreSQL positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var accountColumns = []string{
	"account_id",
	"account_firstname",
	"account_lastname",
	"account_email",
	"account_password",
	"account_type",
	"account_dark_mode",
	"created_at",
}

var classificationColumns = []string{
	"classification_id",
	"classification_name",
}

// vehicleColumns are qualified because vehicle reads join classification.
var vehicleColumns = []string{
	"i.inv_id",
	"i.classification_id",
	"c.classification_name",
	"i.inv_make",
	"i.inv_model",
	"i.inv_year",
	"i.inv_description",
	"i.inv_image",
	"i.inv_thumbnail",
	"i.inv_price",
	"i.inv_miles",
	"i.inv_color",
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateAccountQuery(account models.Account) (string, []any, error) {
	return toSQL(psql.
		Insert(account.TableName()).
		Columns("account_firstname", "account_lastname", "account_email", "account_password").
		Values(account.FirstName, account.LastName, account.Email, account.Password).
		Suffix(returning(accountColumns)))
}

func buildFindAccountByEmailQuery(email string) (string, []any, error) {
	return toSQL(psql.
		Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(sq.Eq{"account_email": email}))
}

func buildFindAccountByIDQuery(accountID int64) (string, []any, error) {
	return toSQL(psql.
		Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(sq.Eq{"account_id": accountID}))
}

func buildEmailExistsQuery(email string) (string, []any, error) {
	return toSQL(psql.
		Select("COUNT(*)").
		From(models.Account{}.TableName()).
		Where(sq.Eq{"account_email": email}))
}

func buildUpdateAccountQuery(account models.Account) (string, []any, error) {
	return toSQL(psql.
		Update(account.TableName()).
		Set("account_firstname", account.FirstName).
		Set("account_lastname", account.LastName).
		Set("account_email", account.Email).
		Where(sq.Eq{"account_id": account.AccountID}).
		Suffix(returning(accountColumns)))
}

func buildUpdatePasswordQuery(accountID int64, passwordHash string) (string, []any, error) {
	return toSQL(psql.
		Update(models.Account{}.TableName()).
		Set("account_password", passwordHash).
		Where(sq.Eq{"account_id": accountID}))
}

func buildUpdateDarkModeQuery(accountID int64, darkMode bool) (string, []any, error) {
	return toSQL(psql.
		Update(models.Account{}.TableName()).
		Set("account_dark_mode", darkMode).
		Where(sq.Eq{"account_id": accountID}))
}

func buildSelectClassificationsQuery() (string, []any, error) {
	return toSQL(psql.
		Select(classificationColumns...).
		From(models.Classification{}.TableName()).
		OrderBy("classification_name"))
}

func buildSelectClassificationByIDQuery(classificationID int64) (string, []any, error) {
	return toSQL(psql.
		Select(classificationColumns...).
		From(models.Classification{}.TableName()).
		Where(sq.Eq{"classification_id": classificationID}))
}

func buildInsertClassificationQuery(name string) (string, []any, error) {
	return toSQL(psql.
		Insert(models.Classification{}.TableName()).
		Columns("classification_name").
		Values(name).
		Suffix(returning(classificationColumns)))
}

func selectVehicles() sq.SelectBuilder {
	return psql.
		Select(vehicleColumns...).
		From(models.Vehicle{}.TableName() + " AS i").
		Join(models.Classification{}.TableName() + " AS c ON c.classification_id = i.classification_id")
}

func buildSelectVehiclesByClassificationQuery(classificationID int64) (string, []any, error) {
	return toSQL(selectVehicles().
		Where(sq.Eq{"i.classification_id": classificationID}).
		OrderBy("i.inv_make", "i.inv_model", "i.inv_id"))
}

func buildSelectVehicleByIDQuery(invID int64) (string, []any, error) {
	return toSQL(selectVehicles().
		Where(sq.Eq{"i.inv_id": invID}))
}

func buildInsertVehicleQuery(v models.Vehicle) (string, []any, error) {
	return toSQL(psql.
		Insert(v.TableName()).
		Columns(
			"classification_id",
			"inv_make",
			"inv_model",
			"inv_year",
			"inv_description",
			"inv_image",
			"inv_thumbnail",
			"inv_price",
			"inv_miles",
			"inv_color",
		).
		Values(
			v.ClassificationID,
			v.Make,
			v.Model,
			v.Year,
			v.Description,
			v.Image,
			v.Thumbnail,
			v.Price,
			v.Miles,
			v.Color,
		).
		Suffix("RETURNING inv_id"))
}
