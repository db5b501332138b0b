package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateStatements(t *testing.T) {
	s := &Schema{
		Tables: []*Table{
			{
				Name: "customer",
				Fields: []*Field{
					{Name: "customer_id", DataType: "INT", PrimaryKey: true},
					{Name: "email", DataType: "VARCHAR(255)", Constraints: []string{"NOT NULL", "UNIQUE"}},
				},
			},
			{
				Name: "orders",
				Fields: []*Field{
					{Name: "order_id", DataType: "INT", PrimaryKey: true},
					{
						Name:       "customer_id",
						DataType:   "INT",
						ForeignKey: true,
						Reference:  &Reference{Table: "customer", Column: "customer_id"},
					},
				},
			},
		},
	}

	ddl := CreateStatements(s)
	expected := `CREATE TABLE customer (
    customer_id INT PRIMARY KEY,
    email VARCHAR(255) NOT NULL UNIQUE
);

CREATE TABLE orders (
    order_id INT PRIMARY KEY,
    customer_id INT,
    FOREIGN KEY (customer_id) REFERENCES customer.customer_id
);`
	require.Equal(t, expected, ddl)
}

func TestCreateStatementsEmptySchema(t *testing.T) {
	require.Equal(t, "", CreateStatements(&Schema{}))
}

func TestSuggestIndexes(t *testing.T) {
	s := &Schema{
		Tables: []*Table{
			{
				Name: "orders",
				Fields: []*Field{
					{Name: "order_id", DataType: "INT", PrimaryKey: true},
					{Name: "customer_id", DataType: "INT", ForeignKey: true},
					{Name: "product_id", DataType: "INT", ForeignKey: true},
				},
			},
		},
	}

	suggestions := SuggestIndexes(s)
	require.Equal(t, []string{
		"CREATE INDEX idx_orders_customer_id ON orders(customer_id);",
		"CREATE INDEX idx_orders_product_id ON orders(product_id);",
	}, suggestions)
}

func TestSuggestIndexesNoForeignKeys(t *testing.T) {
	s := &Schema{Tables: []*Table{{Name: "t", Fields: []*Field{{Name: "id", PrimaryKey: true}}}}}
	require.Empty(t, SuggestIndexes(s))
}
