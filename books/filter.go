package books

import "go.mongodb.org/mongo-driver/bson"

// BuildBookFilter translates the catalog query parameters into a Mongo
// filter. An empty search matches everything; genre "All" (or empty)
// applies no genre restriction. Text search is a case-insensitive
// substring match over title, author and description.
func BuildBookFilter(search, genre string) bson.M {
	filter := bson.M{}

	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"title": regex},
			{"author": regex},
			{"description": regex},
		}
	}

	if genre != "" && genre != "All" {
		filter["genre"] = genre
	}

	return filter
}
