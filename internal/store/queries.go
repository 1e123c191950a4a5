package store

const (
	// Listings

	queryUpsertListing = `
		INSERT INTO listings (
			item_id, title, item_url, image_url, condition_raw, variant_attributes,
			price, currency, shipping_cost, listing_type, seller_name, seller_feedback_pct,
			card_name, set_name, card_number, listed_at
		) VALUES (
			@item_id, @title, @item_url, @image_url, @condition_raw, @variant_attributes,
			@price, @currency, @shipping_cost, @listing_type, @seller_name, @seller_feedback_pct,
			@card_name, @set_name, @card_number, @listed_at
		)
		ON CONFLICT (item_id) DO UPDATE SET
			title               = EXCLUDED.title,
			item_url            = EXCLUDED.item_url,
			image_url           = EXCLUDED.image_url,
			condition_raw       = EXCLUDED.condition_raw,
			variant_attributes  = COALESCE(EXCLUDED.variant_attributes, listings.variant_attributes),
			price               = EXCLUDED.price,
			currency            = EXCLUDED.currency,
			shipping_cost       = EXCLUDED.shipping_cost,
			listing_type        = EXCLUDED.listing_type,
			seller_name         = EXCLUDED.seller_name,
			seller_feedback_pct = EXCLUDED.seller_feedback_pct,
			card_name           = EXCLUDED.card_name,
			set_name            = EXCLUDED.set_name,
			card_number         = EXCLUDED.card_number,
			updated_at          = now()
		RETURNING ` + listingColumns

	queryGetListingByID = baseListingsSelect + `
		WHERE id = $1`

	queryListListingsAfter = baseListingsSelect + `
		WHERE item_id > $1
		ORDER BY item_id
		LIMIT $2`

	queryUpdateListingValuation = `
		UPDATE listings SET
			identity_key         = NULLIF(@identity_key, ''),
			grade                = @grade,
			is_graded            = @is_graded,
			match_tier           = @match_tier,
			reference_product_id = NULLIF(@reference_product_id, ''),
			market_value         = @market_value,
			valuation            = @valuation,
			valued_at            = now(),
			updated_at           = now()
		WHERE id = @id`

	// Reference snapshots

	queryDeleteReferenceSnapshot = `
		DELETE FROM reference_prices WHERE import_date = $1`

	queryInsertReferencePrice = `
		INSERT INTO reference_prices (
			product_id, import_date, product_name, console_name, genre,
			prices, sales_volume, release_date
		) VALUES (
			@product_id, @import_date, @product_name, @console_name, @genre,
			@prices, @sales_volume, @release_date
		)`

	referenceColumns = `product_id, product_name, console_name, genre,
		prices, sales_volume, release_date, import_date`

	queryLoadLatestReferences = `
		SELECT ` + referenceColumns + `
		FROM reference_prices
		WHERE import_date = (SELECT max(import_date) FROM reference_prices)
		ORDER BY product_id`

	queryLatestReferenceImport = `
		SELECT import_date, COUNT(*)
		FROM reference_prices
		GROUP BY import_date
		ORDER BY import_date DESC
		LIMIT 1`

	queryReferenceHistory = `
		SELECT ` + referenceColumns + `
		FROM reference_prices
		WHERE product_id = $1 AND import_date >= $2
		ORDER BY import_date`

	queryPruneReferenceSnapshots = `
		DELETE FROM reference_prices
		WHERE import_date <= (
			SELECT import_date FROM (
				SELECT DISTINCT import_date FROM reference_prices
				ORDER BY import_date DESC
				OFFSET $1 LIMIT 1
			) AS cutoff
		)`

	// Job runs

	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = NULLIF($3, ''),
			rows_affected = $4
		WHERE id = $1`

	jobRunColumns = `id, job_name, started_at, completed_at, status,
		COALESCE(error_text, ''), rows_affected`

	queryListJobRuns = `
		SELECT ` + jobRunColumns + `
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name) ` + jobRunColumns + `
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsFailed = `
		UPDATE job_runs SET
			status       = 'failed',
			error_text   = 'abandoned: process exited before completion',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`
)
