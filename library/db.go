package library

import (
	"crypto/sha1"
	"database/sql"
	"fmt"

	"github.com/bodgit/rgba"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the SQLite database backing a Library. Encoded images are stored
// zstd compressed and shared between names with identical contents.
type DB struct {
	db *sql.DB
}

// Info describes a stored image.
type Info struct {
	Name   string
	Width  int
	Height int
	Pos    int
	SHA1   string
}

// NewDB opens the database in file, creating the tables if necessary.
func NewDB(file string) (*DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS pixels (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, data BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS image (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, width INTEGER NOT NULL, height INTEGER NOT NULL, pos INTEGER NOT NULL, pixels_id INTEGER NOT NULL, FOREIGN KEY(pixels_id) REFERENCES pixels(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{
		db: db,
	}, nil
}

// Close closes the database.
func (db *DB) Close() error {
	return db.db.Close()
}

func addPixels(tx *sql.Tx, b []byte) (int64, error) {
	sha := fmt.Sprintf("%X", sha1.Sum(b))

	var id int64
	switch err := tx.QueryRow("SELECT id FROM pixels WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := tx.Exec("INSERT INTO pixels (sha1, data) VALUES (?, ?)", sha, compress(b))
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// Put stores img under name, replacing any existing image with that name.
func (db *DB) Put(name string, img *rgba.Image) error {
	b, err := img.MarshalBinary()
	if err != nil {
		return err
	}

	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id, err := addPixels(tx, b)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("INSERT INTO image (name, width, height, pos, pixels_id) VALUES (?, ?, ?, ?, ?) ON CONFLICT(name) DO UPDATE SET width = excluded.width, height = excluded.height, pos = excluded.pos, pixels_id = excluded.pixels_id", name, img.Width(), img.Height(), img.Index()-1, id); err != nil {
		return err
	}

	if err := removeOrphans(tx); err != nil {
		return err
	}

	return tx.Commit()
}

// Get returns the image stored under name or ErrNotFound.
func (db *DB) Get(name string) (*rgba.Image, error) {
	var data []byte
	switch err := db.db.QueryRow("SELECT p.data FROM image AS i JOIN pixels AS p ON i.pixels_id = p.id WHERE i.name = ?", name).Scan(&data); err {
	case sql.ErrNoRows:
		return nil, ErrNotFound
	case nil:
		b, err := decompress(data)
		if err != nil {
			return nil, err
		}
		img := new(rgba.Image)
		if err := img.UnmarshalBinary(b); err != nil {
			return nil, err
		}
		return img, nil
	default:
		return nil, err
	}
}

// List describes every stored image, ordered by name.
func (db *DB) List() ([]Info, error) {
	rows, err := db.db.Query("SELECT i.name, i.width, i.height, i.pos, p.sha1 FROM image AS i JOIN pixels AS p ON i.pixels_id = p.id ORDER BY i.name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Info
	for rows.Next() {
		var info Info
		if err := rows.Scan(&info.Name, &info.Width, &info.Height, &info.Pos, &info.SHA1); err != nil {
			return nil, err
		}
		list = append(list, info)
	}

	return list, rows.Err()
}

// Delete removes the image stored under name or returns ErrNotFound.
func (db *DB) Delete(name string) error {
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec("DELETE FROM image WHERE name = ?", name)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := removeOrphans(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func removeOrphans(tx *sql.Tx) error {
	_, err := tx.Exec("DELETE FROM pixels WHERE id NOT IN (SELECT pixels_id FROM image)")
	return err
}
