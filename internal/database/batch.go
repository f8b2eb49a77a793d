package database

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

type OpType string

const (
	OpAdd    OpType = "add"
	OpPut    OpType = "put"
	OpDelete OpType = "delete"
)

// Table names the logical table an operation targets.
type Table string

const (
	TableVocabularies  Table = "vocabularies"
	TableUserProgress  Table = "userProgress"
	TableCollections   Table = "collections"
	TableLearningStats Table = "learningStats"
	TableUserSettings  Table = "userSettings"
)

// Operation is one element of a batch: add and put carry Value, delete
// carries Key.
type Operation struct {
	Type  OpType
	Table Table
	Key   string
	Value any
}

// Batch executes the operations as one transaction. The first failing
// operation aborts the call with a BatchError and rolls everything back;
// either all operations commit or none do.
func (d *Database) Batch(ctx context.Context, operations []Operation) error {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	return db.Transaction(func(tx *gorm.DB) error {
		for i, op := range operations {
			if err := applyOperation(tx, op); err != nil {
				return &BatchError{Index: i, Err: err}
			}
		}
		return nil
	})
}

func applyOperation(tx *gorm.DB, op Operation) error {
	switch op.Type {
	case OpAdd:
		if err := checkValueTable(op); err != nil {
			return err
		}
		err := tx.Create(op.Value).Error
		if err != nil {
			return opErr("add", string(op.Table), err)
		}
		return nil
	case OpPut:
		if err := checkValueTable(op); err != nil {
			return err
		}
		err := tx.Save(op.Value).Error
		if err != nil {
			return opErr("put", string(op.Table), err)
		}
		return nil
	case OpDelete:
		model, keyColumn, err := tableModel(op.Table)
		if err != nil {
			return err
		}
		return opErr("delete", string(op.Table), tx.Delete(model, keyColumn+" = ?", op.Key).Error)
	}
	return fmt.Errorf("unknown operation type: %s", op.Type)
}

// checkValueTable rejects add/put operations whose Value does not belong
// to the declared table; gorm routes writes by the value's type, so a
// mismatched pair would land in the wrong table.
func checkValueTable(op Operation) error {
	model, _, err := tableModel(op.Table)
	if err != nil {
		return err
	}
	if op.Value == nil {
		return fmt.Errorf("%s %s: missing value", op.Type, op.Table)
	}
	want := reflect.TypeOf(model).Elem()
	got := reflect.TypeOf(op.Value)
	if got.Kind() == reflect.Pointer {
		got = got.Elem()
	}
	if got != want {
		return fmt.Errorf("%s %s: value type %T does not belong to table", op.Type, op.Table, op.Value)
	}
	return nil
}

func tableModel(table Table) (any, string, error) {
	switch table {
	case TableVocabularies:
		return &entities.Vocabulary{}, "id", nil
	case TableUserProgress:
		return &entities.Progress{}, "id", nil
	case TableCollections:
		return &entities.Collection{}, "id", nil
	case TableLearningStats:
		return &entities.LearningStats{}, "user_id", nil
	case TableUserSettings:
		return &entities.UserSettings{}, "user_id", nil
	}
	return nil, "", fmt.Errorf("unknown table: %s", table)
}
