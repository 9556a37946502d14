package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const GigColName = "gigs"

// GigsRepo is the document-store side of the catalog: published gigs with
// their tickets and reviews. The in-memory catalog is seeded from here on
// sign-in; durability is entirely this store's problem.
type GigsRepo interface {
	InsertGig(ctx context.Context, gig *Gig) error
	UpdateGig(ctx context.Context, id uuid.UUID, update GigUpdate) error
	DeleteGig(ctx context.Context, id uuid.UUID) error
	ListGigs(ctx context.Context) ([]Gig, error)
	ListGigsByArtist(ctx context.Context, artistId uuid.UUID) ([]Gig, error)
	AddTicket(ctx context.Context, gigId uuid.UUID, ticket Ticket) error
	AddReview(ctx context.Context, gigId uuid.UUID, review Review, rating float64, reviewCount int) error
}

// Monetary amounts travel through Mongo as decimal strings; the documents
// below are the wire shape, converted at the repo boundary.
type addOnDoc struct {
	ID    string `bson:"id"`
	Name  string `bson:"name"`
	Kind  string `bson:"kind"`
	Price string `bson:"price"`
}

type ticketDoc struct {
	ID          string    `bson:"id"`
	GigID       string    `bson:"gig_id"`
	Name        string    `bson:"name"`
	Price       string    `bson:"price"`
	Quantity    int       `bson:"quantity"`
	EventDate   time.Time `bson:"event_date"`
	Location    string    `bson:"location"`
	Contact     string    `bson:"contact"`
	Flyer       string    `bson:"flyer,omitempty"`
	Description string    `bson:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
}

type gigDoc struct {
	ID          string      `bson:"_id"`
	ArtistID    string      `bson:"artist_id"`
	Title       string      `bson:"title"`
	Description string      `bson:"description"`
	Category    string      `bson:"category"`
	BasePrice   string      `bson:"base_price"`
	MinQuantity int         `bson:"min_quantity"`
	MaxQuantity int         `bson:"max_quantity"`
	Images      []string    `bson:"images"`
	Location    string      `bson:"location"`
	AddOns      []addOnDoc  `bson:"add_ons"`
	Tickets     []ticketDoc `bson:"tickets"`
	Reviews     []Review    `bson:"reviews"`
	Rating      float64     `bson:"rating"`
	ReviewCount int         `bson:"review_count"`
	CreatedAt   time.Time   `bson:"created_at"`
	UpdatedAt   time.Time   `bson:"updated_at"`
}

func toTicketDoc(t Ticket) ticketDoc {
	return ticketDoc{
		ID:          t.ID.String(),
		GigID:       t.GigID.String(),
		Name:        t.Name,
		Price:       t.Price.String(),
		Quantity:    t.Quantity,
		EventDate:   t.EventDate,
		Location:    t.Location,
		Contact:     t.Contact,
		Flyer:       t.Flyer,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

func toGigDoc(g *Gig) gigDoc {
	doc := gigDoc{
		ID:          g.ID.String(),
		ArtistID:    g.ArtistID.String(),
		Title:       g.Title,
		Description: g.Description,
		Category:    g.Category,
		BasePrice:   g.BasePrice.String(),
		MinQuantity: g.MinQuantity,
		MaxQuantity: g.MaxQuantity,
		Images:      g.Images,
		Location:    g.Location,
		Reviews:     g.Reviews,
		Rating:      g.Rating,
		ReviewCount: g.ReviewCount,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
	for _, a := range g.AddOns {
		doc.AddOns = append(doc.AddOns, addOnDoc{
			ID:    a.ID,
			Name:  a.Name,
			Kind:  string(a.Kind),
			Price: a.Price.String(),
		})
	}
	for _, t := range g.Tickets {
		doc.Tickets = append(doc.Tickets, toTicketDoc(t))
	}
	return doc
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (doc gigDoc) toGig() (Gig, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return Gig{}, fmt.Errorf("bad gig id %q: %v", doc.ID, err)
	}
	artistId, _ := uuid.Parse(doc.ArtistID)

	g := Gig{
		ID:          id,
		ArtistID:    artistId,
		Title:       doc.Title,
		Description: doc.Description,
		Category:    doc.Category,
		BasePrice:   parseAmount(doc.BasePrice),
		MinQuantity: doc.MinQuantity,
		MaxQuantity: doc.MaxQuantity,
		Images:      doc.Images,
		Location:    doc.Location,
		Reviews:     doc.Reviews,
		Rating:      doc.Rating,
		ReviewCount: doc.ReviewCount,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
	for _, a := range doc.AddOns {
		g.AddOns = append(g.AddOns, AddOn{
			ID:    a.ID,
			Name:  a.Name,
			Kind:  AddOnKind(a.Kind),
			Price: parseAmount(a.Price),
		})
	}
	for _, t := range doc.Tickets {
		ticketId, _ := uuid.Parse(t.ID)
		gigId, _ := uuid.Parse(t.GigID)
		g.Tickets = append(g.Tickets, Ticket{
			ID:          ticketId,
			GigID:       gigId,
			Name:        t.Name,
			Price:       parseAmount(t.Price),
			Quantity:    t.Quantity,
			EventDate:   t.EventDate,
			Location:    t.Location,
			Contact:     t.Contact,
			Flyer:       t.Flyer,
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
		})
	}
	return g, nil
}

func (mdb *MongodbRepo) InsertGig(ctx context.Context, gig *Gig) error {
	col, err := mdb.GetCollection(ctx, DBName, GigColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, toGigDoc(gig)); err != nil {
		return fmt.Errorf("error inserting gig: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) UpdateGig(ctx context.Context, id uuid.UUID, update GigUpdate) error {
	col, err := mdb.GetCollection(ctx, DBName, GigColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	set := bson.M{"updated_at": time.Now()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.BasePrice != nil {
		set["base_price"] = update.BasePrice.String()
	}
	if update.MinQuantity != nil {
		set["min_quantity"] = *update.MinQuantity
	}
	if update.MaxQuantity != nil {
		set["max_quantity"] = *update.MaxQuantity
	}
	if update.Images != nil {
		set["images"] = *update.Images
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.AddOns != nil {
		docs := make([]addOnDoc, 0, len(*update.AddOns))
		for _, a := range *update.AddOns {
			docs = append(docs, addOnDoc{ID: a.ID, Name: a.Name, Kind: string(a.Kind), Price: a.Price.String()})
		}
		set["add_ons"] = docs
	}

	res, err := col.UpdateOne(ctx, bson.M{"_id": id.String()}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating gig: %v", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("gig not found")
	}
	return nil
}

func (mdb *MongodbRepo) DeleteGig(ctx context.Context, id uuid.UUID) error {
	col, err := mdb.GetCollection(ctx, DBName, GigColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return fmt.Errorf("error deleting gig: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("gig not found")
	}
	return nil
}

func (mdb *MongodbRepo) ListGigs(ctx context.Context) ([]Gig, error) {
	col, err := mdb.GetCollection(ctx, DBName, GigColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	// Seed order is publish order; the filter engine is stable on top of it.
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding gigs: %v", err)
	}
	defer cursor.Close(ctx)

	return decodeGigs(ctx, cursor)
}

func (mdb *MongodbRepo) ListGigsByArtist(ctx context.Context, artistId uuid.UUID) ([]Gig, error) {
	col, err := mdb.GetCollection(ctx, DBName, GigColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{"artist_id": artistId.String()}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding gigs by artist: %v", err)
	}
	defer cursor.Close(ctx)

	return decodeGigs(ctx, cursor)
}

func decodeGigs(ctx context.Context, cursor *mongo.Cursor) ([]Gig, error) {
	var gigs []Gig
	for cursor.Next(ctx) {
		var doc gigDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding gig: %v", err)
		}
		gig, err := doc.toGig()
		if err != nil {
			return nil, err
		}
		gigs = append(gigs, gig)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return gigs, nil
}

func (mdb *MongodbRepo) AddTicket(ctx context.Context, gigId uuid.UUID, ticket Ticket) error {
	col, err := mdb.GetCollection(ctx, DBName, GigColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx,
		bson.M{"_id": gigId.String()},
		bson.M{
			"$push": bson.M{"tickets": toTicketDoc(ticket)},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("error adding ticket: %v", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("gig not found")
	}
	return nil
}

func (mdb *MongodbRepo) AddReview(ctx context.Context, gigId uuid.UUID, review Review, rating float64, reviewCount int) error {
	col, err := mdb.GetCollection(ctx, DBName, GigColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx,
		bson.M{"_id": gigId.String()},
		bson.M{
			"$push": bson.M{"reviews": review},
			"$set": bson.M{
				"rating":       rating,
				"review_count": reviewCount,
				"updated_at":   time.Now(),
			},
		},
	)
	if err != nil {
		return fmt.Errorf("error adding review: %v", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("gig not found")
	}
	return nil
}
