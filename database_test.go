package main

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	dataDir = t.TempDir()
	defer func() { dataDir = "." }()

	db, err := createdb(dbpath(), "127.0.0.1:8080")
	if err != nil {
		t.Fatal(err)
	}
	alreadyopendb = db
	defer func() {
		alreadyopendb = nil
		db.Close()
	}()
	prepareStatements(db)

	dbversion := 0
	getconfig("dbversion", &dbversion)
	if dbversion != myVersion {
		t.Errorf("dbversion %d", dbversion)
	}
	listener := ""
	getconfig("listener", &listener)
	if listener != "127.0.0.1:8080" {
		t.Errorf("listener %s", listener)
	}
	maxage := 0
	getconfig("maxage", &maxage)
	if maxage != defaultmaxage {
		t.Errorf("maxage %d", maxage)
	}

	missing := "untouched"
	err = getconfig("nosuchkey", &missing)
	if err != nil || missing != "untouched" {
		t.Errorf("missing key: %v %s", err, missing)
	}

	err = setconfig("maxage", 60)
	if err != nil {
		t.Fatal(err)
	}
	getconfig("maxage", &maxage)
	if maxage != 60 {
		t.Errorf("maxage after set %d", maxage)
	}
	var count int
	db.QueryRow("select count(*) from config where key = 'maxage'").Scan(&count)
	if count != 1 {
		t.Errorf("%d maxage rows", count)
	}
}

func TestCreateTwice(t *testing.T) {
	name := filepath.Join(t.TempDir(), dbname)
	db, err := createdb(name, "/tmp/sock")
	if err != nil {
		t.Fatal(err)
	}
	db.Close()
	_, err = createdb(name, "/tmp/sock")
	if err == nil {
		t.Errorf("created over an existing database")
	}
}

func TestUpgrade(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), dbname))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	for _, s := range []string{
		"create table config (key text, value text)",
		"insert into config (key, value) values ('dbversion', 1)",
		"insert into config (key, value) values ('listener', '127.0.0.1:8080')",
	} {
		doordie(db, s)
	}
	alreadyopendb = db
	defer func() { alreadyopendb = nil }()
	prepareStatements(db)

	upgradedb()

	dbversion := 0
	getconfig("dbversion", &dbversion)
	if dbversion != myVersion {
		t.Errorf("dbversion %d", dbversion)
	}
	maxage := 0
	getconfig("maxage", &maxage)
	if maxage != defaultmaxage {
		t.Errorf("maxage %d", maxage)
	}
	listener := ""
	getconfig("listener", &listener)
	if listener != "127.0.0.1:8080" {
		t.Errorf("listener %s", listener)
	}

	// running it again leaves things alone
	upgradedb()
	var count int
	db.QueryRow("select count(*) from config where key = 'maxage'").Scan(&count)
	if count != 1 {
		t.Errorf("%d maxage rows", count)
	}
}
