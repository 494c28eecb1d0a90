package schema

// mysql cannot index a TEXT primary key without a prefix length, and its default collation
// would make titles case-insensitive
const (
	schemaMysql = `CREATE TABLE entries (title VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin PRIMARY KEY, content MEDIUMTEXT)`
	schema      = `CREATE TABLE entries (title TEXT PRIMARY KEY, content TEXT)`
	dropSchema  = `DROP TABLE entries`
)

func createStmt(driver string) string {
	if driver == "mysql" {
		return schemaMysql
	}
	return schema
}
