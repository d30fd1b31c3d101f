//
// Copyright (c) 2019 Ted Unangst <tedu@tedunangst.com>
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that the above
// copyright notice and this permission notice appear in all copies.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
// WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
// MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
// ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
// WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
// ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
// OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.

package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "humungus.tedunangst.com/r/go-sqlite3"
)

const myVersion = 2

var dbname = "identicon.db"

var alreadyopendb *sql.DB
var stmtConfig, stmtSaveConfig *sql.Stmt

func dbpath() string {
	return filepath.Join(dataDir, dbname)
}

func opendatabase() *sql.DB {
	if alreadyopendb != nil {
		return alreadyopendb
	}
	name := dbpath()
	_, err := os.Stat(name)
	if err != nil {
		elog.Fatalf("unable to open database: %s", err)
	}
	db, err := sql.Open("sqlite3", name)
	if err != nil {
		elog.Fatalf("unable to open database: %s", err)
	}
	prepareStatements(db)
	alreadyopendb = db
	return db
}

func preparetodie(db *sql.DB, s string) *sql.Stmt {
	stmt, err := db.Prepare(s)
	if err != nil {
		elog.Fatalf("error %s: %s", err, s)
	}
	return stmt
}

func prepareStatements(db *sql.DB) {
	stmtConfig = preparetodie(db, "select value from config where key = ?")
	stmtSaveConfig = preparetodie(db, "insert into config (key, value) values (?, ?)")
}

// getconfig leaves value alone if the key isn't there
func getconfig(key string, value interface{}) error {
	row := stmtConfig.QueryRow(key)
	err := row.Scan(value)
	if err == sql.ErrNoRows {
		err = nil
	}
	return err
}

func setconfig(key string, val interface{}) error {
	db := opendatabase()
	_, err := db.Exec("delete from config where key = ?", key)
	if err != nil {
		return err
	}
	_, err = stmtSaveConfig.Exec(key, val)
	return err
}

var schema = []string{
	"create table config (key text, value text)",
	"create index idx_configkey on config(key)",
}

func createdb(name string, listener string) (*sql.DB, error) {
	_, err := os.Stat(name)
	if err == nil {
		return nil, fmt.Errorf("%s already exists", name)
	}
	db, err := sql.Open("sqlite3", name)
	if err != nil {
		return nil, err
	}
	tx, err := db.Begin()
	if err != nil {
		db.Close()
		return nil, err
	}
	for _, s := range schema {
		_, err = tx.Exec(s)
		if err != nil {
			tx.Rollback()
			db.Close()
			os.Remove(name)
			return nil, fmt.Errorf("can't run %s: %s", s, err)
		}
	}
	defaults := [][2]interface{}{
		{"dbversion", myVersion},
		{"listener", listener},
		{"maxage", defaultmaxage},
	}
	for _, kv := range defaults {
		_, err = tx.Exec("insert into config (key, value) values (?, ?)", kv[0], kv[1])
		if err != nil {
			tx.Rollback()
			db.Close()
			os.Remove(name)
			return nil, err
		}
	}
	err = tx.Commit()
	if err != nil {
		db.Close()
		os.Remove(name)
		return nil, err
	}
	return db, nil
}

func initdb(listener string) {
	db, err := createdb(dbpath(), listener)
	if err != nil {
		elog.Fatalf("can't create database: %s", err)
	}
	db.Close()
	ilog.Printf("created %s, listening on %s", dbpath(), listener)
}
