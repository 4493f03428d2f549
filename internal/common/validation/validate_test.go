package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atlasledger/go-bank-recon/internal/models"
)

func TestValidateStruct(t *testing.T) {
	type args struct {
		toValidate interface{}
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "success RunMatchingRequest",
			args: args{
				toValidate: models.RunMatchingRequest{
					CompanyID: 1,
					DateFrom:  "2025-01-01",
					DateTo:    "2025-03-31",
				},
			},
			wantErr: false,
		},
		{
			name: "validate RunMatchingRequest missing company",
			args: args{
				toValidate: models.RunMatchingRequest{
					DateFrom: "2025-01-01",
				},
			},
			wantErr: true,
		},
		{
			name: "validate RunMatchingRequest bad date",
			args: args{
				toValidate: models.RunMatchingRequest{
					CompanyID: 1,
					DateFrom:  "01/01/2025",
				},
			},
			wantErr: true,
		},
		{
			name: "validate RunMatchingRequest inverted range",
			args: args{
				toValidate: models.RunMatchingRequest{
					CompanyID: 1,
					DateFrom:  "2025-03-31",
					DateTo:    "2025-01-01",
				},
			},
			wantErr: true,
		},
		{
			name: "validate ReconBatchInput empty batch",
			args: args{
				toValidate: models.ReconBatchInput{
					CompanyID: 1,
				},
			},
			wantErr: true,
		},
		{
			name: "success ReconBatchInput",
			args: args{
				toValidate: models.ReconBatchInput{
					CompanyID: 1,
					MatchedTransactions: []models.MatchedTransaction{
						{
							DocumentID: "bill-204",
							MatchType:  models.MatchKindSingle,
							TransactionDetails: []models.TransactionDetail{
								{TransactionID: "tx-001", OdooID: 9001, Date: "2025-02-10"},
							},
						},
					},
				},
			},
			wantErr: false,
		},
		{
			name: "validate error not register",
			args: args{
				toValidate: struct {
					Name string `json:"name" validate:"required,date"`
				}{
					Name: "12345678901234",
				},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.args.toValidate)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
