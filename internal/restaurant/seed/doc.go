// Package seed populates the store with an initial data set.
//
// A seed file is JSON with two arrays:
//
//	{
//	  "restaurants": [{"id": "r1", "name": "Pizza Place"}],
//	  "menu": [{"restaurant_id": "r1", "id": "m1", "name": "Margherita", "price": 9.5}]
//	}
//
// Records are written as-is; only the key attributes are checked by the
// writer.
package seed
