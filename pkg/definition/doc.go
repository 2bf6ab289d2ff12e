/*
Package definition loads record types and records from YAML or JSON files.

A definition file declares types by name or alias and then records that
reference them:

	namespace: Shop
	types:
	  - name: Item
	    fields: [sku, price]
	    types: {price: float}
	  - alias: pair
	    fields: [left, right]
	records:
	  - type: Item
	    values: [A-1, 9.5]
	  - type: pair
	    fields: {left: 1}

Apply generates every type through a Generator, usually a *factory.Factory,
before it builds any record.
*/
package definition
