package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const OrderColName = "orders"

type OrdersRepo interface {
	InsertOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error)
	ListOrders(ctx context.Context) ([]Order, error)
	ListOrdersByClient(ctx context.Context, clientId uuid.UUID) ([]Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error
}

type addOnChargeDoc struct {
	Name      string `bson:"name"`
	Kind      string `bson:"kind"`
	UnitPrice string `bson:"unit_price"`
	Count     int    `bson:"count"`
}

type orderItemDoc struct {
	GigID     string           `bson:"gig_id"`
	Title     string           `bson:"title"`
	Quantity  int              `bson:"quantity"`
	UnitPrice string           `bson:"unit_price"`
	AddOns    []addOnChargeDoc `bson:"add_ons"`
	LineTotal string           `bson:"line_total"`
}

type orderDoc struct {
	ID        string         `bson:"_id"`
	ClientID  string         `bson:"client_id"`
	ArtistID  string         `bson:"artist_id"`
	Items     []orderItemDoc `bson:"items"`
	Status    string         `bson:"status"`
	Total     string         `bson:"total"`
	Message   string         `bson:"message,omitempty"`
	CreatedAt time.Time      `bson:"created_at"`
	UpdatedAt time.Time      `bson:"updated_at"`
}

func toOrderDoc(o *Order) orderDoc {
	doc := orderDoc{
		ID:        o.ID.String(),
		ClientID:  o.ClientID.String(),
		ArtistID:  o.ArtistID.String(),
		Status:    string(o.Status),
		Total:     o.Total.String(),
		Message:   o.Message,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	for _, it := range o.Items {
		itemDoc := orderItemDoc{
			GigID:     it.GigID.String(),
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.String(),
			LineTotal: it.LineTotal.String(),
		}
		for _, a := range it.AddOns {
			itemDoc.AddOns = append(itemDoc.AddOns, addOnChargeDoc{
				Name:      a.Name,
				Kind:      string(a.Kind),
				UnitPrice: a.UnitPrice.String(),
				Count:     a.Count,
			})
		}
		doc.Items = append(doc.Items, itemDoc)
	}
	return doc
}

func (doc orderDoc) toOrder() (Order, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return Order{}, fmt.Errorf("bad order id %q: %v", doc.ID, err)
	}
	clientId, _ := uuid.Parse(doc.ClientID)
	artistId, _ := uuid.Parse(doc.ArtistID)

	o := Order{
		ID:        id,
		ClientID:  clientId,
		ArtistID:  artistId,
		Status:    OrderStatus(doc.Status),
		Total:     parseAmount(doc.Total),
		Message:   doc.Message,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
	for _, itemDoc := range doc.Items {
		gigId, _ := uuid.Parse(itemDoc.GigID)
		item := OrderItem{
			GigID:     gigId,
			Title:     itemDoc.Title,
			Quantity:  itemDoc.Quantity,
			UnitPrice: parseAmount(itemDoc.UnitPrice),
			LineTotal: parseAmount(itemDoc.LineTotal),
		}
		for _, a := range itemDoc.AddOns {
			item.AddOns = append(item.AddOns, AddOnCharge{
				Name:      a.Name,
				Kind:      AddOnKind(a.Kind),
				UnitPrice: parseAmount(a.UnitPrice),
				Count:     a.Count,
			})
		}
		o.Items = append(o.Items, item)
	}
	return o, nil
}

func (mdb *MongodbRepo) InsertOrder(ctx context.Context, order *Order) error {
	col, err := mdb.GetCollection(ctx, DBName, OrderColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, toOrderDoc(order)); err != nil {
		return fmt.Errorf("error inserting order: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	col, err := mdb.GetCollection(ctx, DBName, OrderColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var doc orderDoc
	if err := col.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error finding order: %v", err)
	}

	order, err := doc.toOrder()
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (mdb *MongodbRepo) ListOrders(ctx context.Context) ([]Order, error) {
	return mdb.findOrders(ctx, bson.M{})
}

func (mdb *MongodbRepo) ListOrdersByClient(ctx context.Context, clientId uuid.UUID) ([]Order, error) {
	return mdb.findOrders(ctx, bson.M{"client_id": clientId.String()})
}

func (mdb *MongodbRepo) findOrders(ctx context.Context, filter bson.M) ([]Order, error) {
	col, err := mdb.GetCollection(ctx, DBName, OrderColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding orders: %v", err)
	}
	defer cursor.Close(ctx)

	var orders []Order
	for cursor.Next(ctx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding order: %v", err)
		}
		order, err := doc.toOrder()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return orders, nil
}

func (mdb *MongodbRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error {
	col, err := mdb.GetCollection(ctx, DBName, OrderColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": bson.M{
			"status":     string(status),
			"updated_at": time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("error updating order status: %v", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order not found")
	}
	return nil
}
