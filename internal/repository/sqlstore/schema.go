package sqlstore

// SQLite uses INTEGER PRIMARY KEY without AUTOINCREMENT so that emptying a
// table during seeding restarts identifiers at 1.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS categories (
	slug TEXT PRIMARY KEY,
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS users (
	username TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	avatar_url TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS reviews (
	review_id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	review_body TEXT NOT NULL,
	designer TEXT NOT NULL DEFAULT '',
	review_img_url TEXT NOT NULL DEFAULT '` + defaultReviewImgURL + `',
	votes INTEGER NOT NULL DEFAULT 0,
	category TEXT NOT NULL,
	owner TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (category) REFERENCES categories(slug),
	FOREIGN KEY (owner) REFERENCES users(username)
);

CREATE TABLE IF NOT EXISTS comments (
	comment_id INTEGER PRIMARY KEY,
	review_id INTEGER NOT NULL,
	author TEXT NOT NULL,
	body TEXT NOT NULL,
	votes INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (review_id) REFERENCES reviews(review_id) ON DELETE CASCADE,
	FOREIGN KEY (author) REFERENCES users(username)
);

CREATE INDEX IF NOT EXISTS idx_reviews_category ON reviews(category);
CREATE INDEX IF NOT EXISTS idx_comments_review ON comments(review_id);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS categories (
	slug VARCHAR PRIMARY KEY,
	description VARCHAR NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS users (
	username VARCHAR PRIMARY KEY,
	name VARCHAR NOT NULL,
	avatar_url VARCHAR NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS reviews (
	review_id SERIAL PRIMARY KEY,
	title VARCHAR NOT NULL,
	review_body VARCHAR NOT NULL,
	designer VARCHAR NOT NULL DEFAULT '',
	review_img_url VARCHAR NOT NULL DEFAULT '` + defaultReviewImgURL + `',
	votes INT NOT NULL DEFAULT 0,
	category VARCHAR NOT NULL REFERENCES categories(slug),
	owner VARCHAR NOT NULL REFERENCES users(username),
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS comments (
	comment_id SERIAL PRIMARY KEY,
	review_id INT NOT NULL REFERENCES reviews(review_id) ON DELETE CASCADE,
	author VARCHAR NOT NULL REFERENCES users(username),
	body VARCHAR NOT NULL,
	votes INT NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_reviews_category ON reviews(category);
CREATE INDEX IF NOT EXISTS idx_comments_review ON comments(review_id);
`

const defaultReviewImgURL = "https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg"

var schemas = map[string]string{
	DriverSQLite:   sqliteSchema,
	DriverPostgres: postgresSchema,
}

// resetStatements empty every table before seeding, children first
var resetStatements = map[string][]string{
	DriverSQLite: {
		"DELETE FROM comments",
		"DELETE FROM reviews",
		"DELETE FROM users",
		"DELETE FROM categories",
	},
	DriverPostgres: {
		"TRUNCATE comments, reviews, users, categories RESTART IDENTITY CASCADE",
	},
}
