package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoleak/pkg/domain/interfaces"
	"github.com/m-mizutani/octoleak/pkg/domain/model"
)

// SaveReport stores the summary of a report to BigQuery and the scan repository, each
// only when configured. Matched secrets are not stored, only their fingerprints.
func (x *UseCase) SaveReport(ctx context.Context, report *model.Report) error {
	record := model.NewScanRecord(report)

	// Insert to BigQuery
	if x.clients.BigQuery() != nil {
		schema, schemaUpdated, err := createOrUpdateBigQueryTable(ctx, x.clients.BigQuery(), record)
		if err != nil {
			return err
		}

		rawRecord := &model.ScanRawRecord{
			ScanRecord: *record,
			Timestamp:  record.Timestamp.UnixMicro(),
		}

		// A freshly updated schema may not be visible to the write stream yet
		if err := x.clients.BigQuery().Insert(ctx, schema, rawRecord, interfaces.WithRetry(schemaUpdated)); err != nil {
			return goerr.Wrap(err, "failed to insert scan data to BigQuery", goerr.V("scan_id", record.ID))
		}
	}

	// Insert to Firestore
	if x.clients.ScanRepository() != nil {
		if err := x.clients.ScanRepository().PutScan(ctx, record); err != nil {
			return goerr.Wrap(err, "failed to save scan record", goerr.V("scan_id", record.ID))
		}
	}

	return nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, record *model.ScanRecord) (schema bigquery.Schema, schemaUpdated bool, err error) {
	schema, err = bqs.Infer(record)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to infer scan schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to create BigQuery table")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, false, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, false, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, false, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, false, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, true, nil
}
