package vehicle

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vehicleColumns = []string{"id", "make", "model", "year", "price", "mileage", "fuel_type", "transmission", "image_url"}

func TestTitle(t *testing.T) {
	v := Vehicle{Make: "Tesla", Model: "Model 3", Year: 2023}
	assert.Equal(t, "2023 Tesla Model 3", v.Title())
}

func TestFixture(t *testing.T) {
	cars := Fixture()
	require.Len(t, cars, 4)

	ids := map[string]bool{}
	for _, v := range cars {
		assert.False(t, ids[v.ID], "duplicate id %s", v.ID)
		ids[v.ID] = true
		assert.Contains(t, FuelTypes, v.FuelType)
		assert.Contains(t, Transmissions, v.Transmission)
		assert.GreaterOrEqual(t, v.Price, 0.0)
		assert.GreaterOrEqual(t, v.Mileage, 0.0)
	}
	assert.Equal(t, "2022 Toyota Camry", cars[0].Title())
}

func TestStaticSourceReturnsCopy(t *testing.T) {
	src := StaticSource(Fixture())

	list, err := src.List()
	require.NoError(t, err)
	require.Len(t, list, 4)

	list[0].Make = "Changed"
	again, err := src.List()
	require.NoError(t, err)
	assert.Equal(t, "Toyota", again[0].Make)
}

func TestDBSourceList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(vehicleColumns).
		AddRow("1", "Toyota", "Camry", 2022, 25000.0, 15000.0, "Gasoline", "Automatic", "camry.jpg").
		AddRow("2", "Tesla", "Model 3", 2023, 45000.0, 5000.0, "Electric", "Automatic", "model3.jpg")

	mock.ExpectQuery("SELECT id, make, model, year, price, mileage, fuel_type, transmission, image_url\\s+FROM Vehicle ORDER BY position, id").
		WillReturnRows(rows)

	list, err := NewDBSource(db).List()

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Camry", list[0].Model)
	assert.Equal(t, 2023, list[1].Year)
	assert.Equal(t, 45000.0, list[1].Price)
	assert.Equal(t, "model3.jpg", list[1].ImageURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBSourceEmptyTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM Vehicle").
		WillReturnRows(sqlmock.NewRows(vehicleColumns))

	list, err := NewDBSource(db).List()

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBSourceQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM Vehicle").
		WillReturnError(errors.New("no such table: Vehicle"))

	list, err := NewDBSource(db).List()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no such table")
	assert.Nil(t, list)
}

func TestDBSourceScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(vehicleColumns).
		AddRow("1", "Toyota", "Camry", "not-a-year", 25000.0, 15000.0, "Gasoline", "Automatic", "camry.jpg")
	mock.ExpectQuery("SELECT (.+) FROM Vehicle").WillReturnRows(rows)

	_, err = NewDBSource(db).List()

	assert.Error(t, err)
}

func TestSaveAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cars := Fixture()[:2]

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS Vehicle").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM Vehicle").WillReturnResult(sqlmock.NewResult(0, 4))
	for i, v := range cars {
		mock.ExpectExec("INSERT INTO Vehicle").
			WithArgs(v.ID, i, v.Make, v.Model, v.Year, v.Price, v.Mileage, v.FuelType, v.Transmission, v.ImageURL).
			WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}
	mock.ExpectCommit()

	require.NoError(t, SaveAll(db, cars))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAllRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS Vehicle").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM Vehicle").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO Vehicle").WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err = SaveAll(db, Fixture())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error saving vehicle 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAllReplacesPreviousImport(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, SaveAll(db, Fixture()))

	ford := Vehicle{ID: "9", Make: "Ford", Model: "Focus", Year: 2019, Price: 12500,
		Mileage: 40000, FuelType: FuelGasoline, Transmission: TransmissionManual}
	require.NoError(t, SaveAll(db, []Vehicle{ford, Fixture()[1]}))

	vehicles, err := NewDBSource(db).List()
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, "9", vehicles[0].ID)
	assert.Equal(t, "2", vehicles[1].ID)
}
