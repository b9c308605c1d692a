package transactionRepository

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			id,
			user_id,
			type,
			amount,
			description,
			date,
			recurring,
			frequency,
			category_id,
			income_source_id,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:type,
			:amount,
			:description,
			:date,
			:recurring,
			:frequency,
			:category_id,
			:income_source_id,
			:created_at,
			:updated_at
		)
	`

	queryGetTransactionByID = `
		SELECT
			t.id,
			t.user_id,
			t.type,
			t.amount,
			t.description,
			t.date,
			t.recurring,
			t.frequency,
			t.category_id,
			t.income_source_id,
			c.name AS category_name,
			i.name AS income_source_name,
			t.created_at,
			t.updated_at
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		LEFT JOIN income_sources i ON i.id = t.income_source_id
		WHERE t.id = :id
	`

	queryGetTransactionsByUserID = `
		SELECT
			t.id,
			t.user_id,
			t.type,
			t.amount,
			t.description,
			t.date,
			t.recurring,
			t.frequency,
			t.category_id,
			t.income_source_id,
			c.name AS category_name,
			i.name AS income_source_name,
			t.created_at,
			t.updated_at
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		LEFT JOIN income_sources i ON i.id = t.income_source_id
		WHERE t.user_id = :user_id
		ORDER BY t.date DESC
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			type = :type,
			amount = :amount,
			description = :description,
			date = :date,
			recurring = :recurring,
			frequency = :frequency,
			category_id = :category_id,
			income_source_id = :income_source_id,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id
	`
)
