package data

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"
)

const (
	insertFavoriteSQL = `INSERT INTO favorite (school_id, name, added_at) VALUES (?, ?, ?)
		ON CONFLICT(school_id) DO UPDATE SET name = ?
	`

	selectFavoritesSQL = `SELECT school_id, name, added_at
		FROM favorite
		ORDER BY added_at, school_id
	`

	selectFavoriteSQL = `SELECT school_id, name, added_at FROM favorite WHERE school_id = ?`

	selectFavoriteIDsSQL = `SELECT school_id FROM favorite ORDER BY added_at, school_id`

	countFavoritesSQL = `SELECT COUNT(*) FROM favorite`

	deleteFavoriteSQL = `DELETE FROM favorite WHERE school_id = ?`

	clearFavoritesSQL = `DELETE FROM favorite`
)

// Favorite is one shortlisted school.
type Favorite struct {
	SchoolID string `json:"school_id" yaml:"school_id"`
	Name     string `json:"name" yaml:"name"`
	AddedAt  string `json:"added_at" yaml:"added_at"`
}

// AddFavorite puts a school on the shortlist and returns the stored
// row. Re-adding an existing favorite refreshes the stored name but
// keeps the original added_at, so list order stays put.
func AddFavorite(db *sql.DB, schoolID, name string) (*Favorite, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}

	if schoolID == "" || name == "" {
		return nil, errors.Errorf("schoolID: %s and name: %s are both required", schoolID, name)
	}

	stmt, err := db.Prepare(insertFavoriteSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare favorite insert statement")
	}

	added := time.Now().UTC().Format(time.RFC3339)
	if _, err = stmt.Exec(schoolID, name, added, name); err != nil {
		return nil, errors.Wrapf(err, "failed to insert favorite: %s", schoolID)
	}

	return GetFavorite(db, schoolID)
}

// GetFavorite returns one favorite by school id, nil when the school
// is not on the shortlist.
func GetFavorite(db *sql.DB, schoolID string) (*Favorite, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}

	stmt, err := db.Prepare(selectFavoriteSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare favorite select statement")
	}

	row := stmt.QueryRow(schoolID)

	fav := &Favorite{}
	if err := row.Scan(&fav.SchoolID, &fav.Name, &fav.AddedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to scan row")
	}

	return fav, nil
}

// RemoveFavorite takes a school off the shortlist. The returned flag
// reports whether the school was actually on it.
func RemoveFavorite(db *sql.DB, schoolID string) (bool, error) {
	if db == nil {
		return false, errDBNotInitialized
	}

	stmt, err := db.Prepare(deleteFavoriteSQL)
	if err != nil {
		return false, errors.Wrap(err, "failed to prepare favorite delete statement")
	}

	res, err := stmt.Exec(schoolID)
	if err != nil {
		return false, errors.Wrapf(err, "failed to delete favorite: %s", schoolID)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "failed to read affected rows")
	}

	return n > 0, nil
}

// ListFavorites returns the shortlist in the order schools were added.
func ListFavorites(db *sql.DB) ([]*Favorite, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}

	stmt, err := db.Prepare(selectFavoritesSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare favorites select statement")
	}

	rows, err := stmt.Query()
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrap(err, "failed to execute favorites select statement")
	}
	defer rows.Close()

	list := make([]*Favorite, 0)
	for rows.Next() {
		fav := &Favorite{}
		if err := rows.Scan(&fav.SchoolID, &fav.Name, &fav.AddedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}
		list = append(list, fav)
	}

	return list, rows.Err()
}

// FavoriteIDs returns the shortlisted school ids in the order they
// were added.
func FavoriteIDs(db *sql.DB) ([]string, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}

	stmt, err := db.Prepare(selectFavoriteIDsSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare favorite ids select statement")
	}

	rows, err := stmt.Query()
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrap(err, "failed to execute favorite ids select statement")
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// CountFavorites returns the shortlist size.
func CountFavorites(db *sql.DB) (int64, error) {
	if db == nil {
		return 0, errDBNotInitialized
	}

	row := db.QueryRow(countFavoritesSQL)

	var count int64
	if err := row.Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "failed to scan row")
	}

	return count, nil
}

// ClearFavorites empties the shortlist and reports how many schools
// were on it.
func ClearFavorites(db *sql.DB) (int64, error) {
	if db == nil {
		return 0, errDBNotInitialized
	}

	res, err := db.Exec(clearFavoritesSQL)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear favorites")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read affected rows")
	}

	return n, nil
}
