package services

import (
	"errors"

	"github.com/atlasledger/go-bank-recon/internal/common"
	"github.com/atlasledger/go-bank-recon/internal/models"
)

func checkDatabaseError(err error, code ...string) error {
	if errors.Is(err, common.ErrNoRows) || errors.Is(err, common.ErrDataNotFound) {
		err = models.GetErrMap(models.ErrKeyDataNotFound)
		if len(code) > 0 {
			err = models.GetErrMap(code[0])
		}
	} else {
		err = models.GetErrMap(models.ErrKeyDatabaseError, err.Error())
	}

	return err
}

// docKey identifies a document across types. Document ids are only
// unique per type, so the composite form is the one used for consumed-set
// bookkeeping and for the executor's document_id field.
func docKey(doc models.FinancialDocument) string {
	return models.DocumentKey(doc.Type, doc.ID)
}
