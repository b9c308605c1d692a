package catalogRepository

const (
	queryCreateCategory = `
INSERT INTO categories (id, user_id, name, type, created_at)
VALUES (:id, :user_id, :name, :type, :created_at)
ON CONFLICT (user_id, name, type) DO NOTHING`

	queryGetCategoriesByUserID = `
SELECT id, user_id, name, type, created_at
FROM categories
    WHERE user_id = :user_id
ORDER BY name ASC`

	queryCreateIncomeSource = `
INSERT INTO income_sources (id, user_id, name, created_at)
VALUES (:id, :user_id, :name, :created_at)
ON CONFLICT (user_id, name) DO NOTHING`

	queryGetIncomeSourcesByUserID = `
SELECT id, user_id, name, created_at
FROM income_sources
    WHERE user_id = :user_id
ORDER BY name ASC`
)
