package reference

import "nutribalance/internal/domain/entity"

// The built-in tables. Per-unit values are kcal and grams; "unidad" entries
// are per piece, "100g" entries are per 100 grams.

func defaultFoods() []*entity.FoodReferenceEntry {
	return []*entity.FoodReferenceEntry{
		{Name: "Napolitana de Chocolate", Calories: 420, Protein: 6, Carbs: 45, Fats: 24, Unit: entity.FoodUnitPiece},
		{Name: "Napolitana de Crema", Calories: 380, Protein: 5, Carbs: 48, Fats: 20, Unit: entity.FoodUnitPiece},
		{Name: "Cruasán (Croissant)", Calories: 280, Protein: 5, Carbs: 30, Fats: 16, Unit: entity.FoodUnitPiece},
		{Name: "Cruasán con chocolate", Calories: 350, Protein: 6, Carbs: 38, Fats: 21, Unit: entity.FoodUnitPiece},
		{Name: "Rosquilla / Donut", Calories: 250, Protein: 3, Carbs: 31, Fats: 12, Unit: entity.FoodUnitPiece},
		{Name: "Palmera de Chocolate", Calories: 450, Protein: 5, Carbs: 55, Fats: 25, Unit: entity.FoodUnitPiece},
		{Name: "Chorizo", Calories: 450, Protein: 24, Carbs: 2, Fats: 38, Unit: entity.FoodUnitPer100g},
		{Name: "Salchichón", Calories: 400, Protein: 26, Carbs: 1, Fats: 32, Unit: entity.FoodUnitPer100g},
		{Name: "Lomo Embuchado", Calories: 210, Protein: 38, Carbs: 1, Fats: 6, Unit: entity.FoodUnitPer100g},
		{Name: "Jamón Serrano", Calories: 240, Protein: 30, Carbs: 0, Fats: 13, Unit: entity.FoodUnitPer100g},
		{Name: "Mortadela", Calories: 310, Protein: 12, Carbs: 2, Fats: 28, Unit: entity.FoodUnitPer100g},
		{Name: "Lentejas con verduras", Calories: 116, Protein: 9, Carbs: 20, Fats: 0.4, Unit: entity.FoodUnitPer100g},
		{Name: "Arroz Blanco", Calories: 130, Protein: 2.7, Carbs: 28, Fats: 0.3, Unit: entity.FoodUnitPer100g},
		{Name: "Arroz con Pollo", Calories: 150, Protein: 8, Carbs: 22, Fats: 3, Unit: entity.FoodUnitPer100g},
		{Name: "Pechuga de Pollo", Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6, Unit: entity.FoodUnitPer100g},
		{Name: "Plátano", Calories: 89, Protein: 1.1, Carbs: 23, Fats: 0.3, Unit: entity.FoodUnitPer100g},
		{Name: "Manzana", Calories: 52, Protein: 0.3, Carbs: 14, Fats: 0.2, Unit: entity.FoodUnitPer100g},
		{Name: "Huevo Cocido", Calories: 155, Protein: 13, Carbs: 1.1, Fats: 11, Unit: entity.FoodUnitPer100g},
		{Name: "Avena", Calories: 389, Protein: 16.9, Carbs: 66, Fats: 6.9, Unit: entity.FoodUnitPer100g},
	}
}

func defaultExercises() []*entity.ExerciseReferenceEntry {
	return []*entity.ExerciseReferenceEntry{
		{ID: "walking", Name: "Caminar", MET: 3.5},
		{ID: "running", Name: "Correr", MET: 8.8},
		{ID: "cycling", Name: "Ciclismo", MET: 7.5},
		{ID: "swimming", Name: "Natación", MET: 8.0},
		{ID: "weightlifting", Name: "Gimnasio / Pesas", MET: 5.0},
		{ID: "soccer", Name: "Fútbol", MET: 9.0},
		{ID: "dancing", Name: "Baile", MET: 5.0},
		{ID: "martial_arts", Name: "Artes Marciales", MET: 10.0},
	}
}

func defaultActivityLevels() []*entity.ActivityLevel {
	return []*entity.ActivityLevel{
		{Multiplier: 1.2, Label: "Sedentario"},
		{Multiplier: 1.375, Label: "Ligero (1-3 días)"},
		{Multiplier: 1.55, Label: "Moderado (3-5 días)"},
		{Multiplier: 1.725, Label: "Intenso (6-7 días)"},
		{Multiplier: 1.9, Label: "Élite (Atleta)"},
	}
}
