// Package feedback collects client ratings of deliveries.
package feedback
