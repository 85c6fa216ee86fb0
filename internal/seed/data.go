package seed

import "learning-service/internal/models"

type subjectData struct {
	title       string
	description string
	image       string
	category    string
	units       []unitData
}

type unitData struct {
	title       string
	description string
	topics      []topicData
	quiz        *quizData
}

type topicData struct {
	title    string
	content  string
	examples []models.Example
}

type quizData struct {
	title     string
	timeLimit int // minutes
	questions []questionData
}

type questionData struct {
	question      string
	options       []string
	correctAnswer int
	explanation   string
}

func starterSubjects() []subjectData {
	return []subjectData{
		{
			title:       "Data Structures & Algorithms",
			description: "Master fundamental data structures and algorithmic thinking with comprehensive examples and practice problems.",
			image:       "https://images.unsplash.com/photo-1555949963-aa79dcee981c?w=400",
			category:    models.CategoryCore,
			units: []unitData{
				{
					title:       "Arrays and Strings",
					description: "Fundamental linear data structures for storing and manipulating data",
					topics: []topicData{
						{
							title: "Array Fundamentals",
							content: "# Array Fundamentals\n\nAn array stores elements of the same type in contiguous " +
								"memory locations, giving O(1) random access by index.\n\n" +
								"## Key characteristics\n\n- Contiguous memory layout\n- Fixed size\n" +
								"- Homogeneous elements\n- Zero-based indexing\n\n" +
								"| Operation | Time |\n|-----------|------|\n| Access | O(1) |\n| Search | O(n) |\n" +
								"| Insertion | O(n) |\n| Deletion | O(n) |",
							examples: []models.Example{
								{
									Title:       "Array Declaration and Initialization",
									Description: "Different ways to create and initialize arrays",
									Code:        "let numbers = [1, 2, 3, 4, 5];\nlet fruits = new Array(\"apple\", \"banana\", \"orange\");",
									Language:    "javascript",
								},
								{
									Title:       "Array Access and Modification",
									Description: "Accessing and modifying array elements by index",
									Code:        "let arr = [10, 20, 30];\nconsole.log(arr[0]); // 10\narr[1] = 25;",
									Language:    "javascript",
								},
							},
						},
						{
							title: "String Manipulation",
							content: "# String Manipulation\n\nStrings are immutable sequences of characters in most " +
								"languages. Common patterns include two pointers for palindrome checks and sliding " +
								"windows for substring problems.",
							examples: []models.Example{
								{
									Title:       "Reversing a String",
									Description: "Two-pointer in-place reversal",
									Code:        "function reverse(s) {\n  let a = s.split('');\n  for (let i = 0, j = a.length - 1; i < j; i++, j--) {\n    [a[i], a[j]] = [a[j], a[i]];\n  }\n  return a.join('');\n}",
									Language:    "javascript",
								},
							},
						},
					},
					quiz: &quizData{
						title:     "Arrays and Strings Quiz",
						timeLimit: 20,
						questions: []questionData{
							{
								question:      "What is the time complexity of accessing an element in an array by index?",
								options:       []string{"O(1)", "O(n)", "O(log n)", "O(n²)"},
								correctAnswer: 0,
								explanation:   "Array elements can be accessed directly using their index, which takes constant time O(1).",
							},
							{
								question: "Which of the following is NOT a characteristic of arrays?",
								options: []string{
									"Elements are stored in contiguous memory locations",
									"All elements must be of the same data type",
									"Dynamic size that can change during runtime",
									"Zero-based indexing in most programming languages",
								},
								correctAnswer: 2,
								explanation:   "Arrays typically have a fixed size determined at creation time.",
							},
							{
								question:      "What is the worst-case time complexity for searching an element in an unsorted array?",
								options:       []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"},
								correctAnswer: 2,
								explanation:   "In the worst case every element must be checked, giving O(n).",
							},
						},
					},
				},
				{
					title:       "Linked Lists",
					description: "Dynamic data structures with pointer-based connections",
					topics: []topicData{
						{
							title: "Singly Linked Lists",
							content: "# Singly Linked Lists\n\nA linked list chains nodes through next pointers. " +
								"Insertion at the head is O(1); random access costs O(n).",
							examples: []models.Example{
								{
									Title:       "Node Definition",
									Description: "A minimal singly linked list node",
									Code:        "class Node {\n  constructor(value) {\n    this.value = value;\n    this.next = null;\n  }\n}",
									Language:    "javascript",
								},
							},
						},
						{
							title: "List Traversal and Reversal",
							content: "# List Traversal and Reversal\n\nIterative reversal rewires next pointers one node " +
								"at a time using three cursors: previous, current, next.",
							examples: []models.Example{
								{
									Title:       "Iterative Reversal",
									Description: "Reverse a list in O(n) time and O(1) space",
									Code:        "function reverse(head) {\n  let prev = null;\n  while (head) {\n    const next = head.next;\n    head.next = prev;\n    prev = head;\n    head = next;\n  }\n  return prev;\n}",
									Language:    "javascript",
								},
							},
						},
					},
					quiz: &quizData{
						title:     "Linked Lists Quiz",
						timeLimit: 15,
						questions: []questionData{
							{
								question:      "What is the time complexity of inserting a node at the head of a singly linked list?",
								options:       []string{"O(1)", "O(log n)", "O(n)", "O(n²)"},
								correctAnswer: 0,
								explanation:   "Head insertion only rewires the head pointer, independent of list length.",
							},
							{
								question:      "Which operation is more efficient on arrays than on linked lists?",
								options:       []string{"Insertion at the front", "Random access by index", "Deletion of the head", "Growing beyond initial capacity"},
								correctAnswer: 1,
								explanation:   "Arrays offer O(1) indexed access; linked lists must walk the chain.",
							},
						},
					},
				},
			},
		},
		{
			title:       "Web Development",
			description: "Build modern web applications with HTML, CSS, JavaScript, and popular frameworks.",
			image:       "https://images.unsplash.com/photo-1547658719-da2b51169166?w=400",
			category:    models.CategoryFrontend,
			units: []unitData{
				{
					title:       "HTML & CSS Fundamentals",
					description: "Structure and styling of web pages",
					topics: []topicData{
						{
							title: "Semantic HTML",
							content: "# Semantic HTML\n\nSemantic elements like `<article>`, `<nav>` and `<section>` " +
								"describe meaning to browsers and assistive technology, not just presentation.",
							examples: []models.Example{
								{
									Title:       "Page Skeleton",
									Description: "A semantic document outline",
									Code:        "<header>\n  <nav>...</nav>\n</header>\n<main>\n  <article>...</article>\n</main>\n<footer>...</footer>",
									Language:    "html",
								},
							},
						},
						{
							title: "CSS Layout with Flexbox",
							content: "# CSS Layout with Flexbox\n\nFlexbox lays out items along a main axis with " +
								"`justify-content` and across it with `align-items`.",
							examples: []models.Example{
								{
									Title:       "Centering with Flexbox",
									Description: "Center a child both vertically and horizontally",
									Code:        ".parent {\n  display: flex;\n  justify-content: center;\n  align-items: center;\n}",
									Language:    "css",
								},
							},
						},
					},
					quiz: &quizData{
						title:     "HTML & CSS Quiz",
						timeLimit: 10,
						questions: []questionData{
							{
								question:      "Which element should wrap the dominant content of a document?",
								options:       []string{"<div>", "<main>", "<section>", "<content>"},
								correctAnswer: 1,
								explanation:   "<main> identifies the dominant content of the <body>.",
							},
							{
								question:      "Which CSS property aligns flex items along the main axis?",
								options:       []string{"align-items", "align-content", "justify-content", "place-self"},
								correctAnswer: 2,
								explanation:   "justify-content distributes space along the main axis.",
							},
						},
					},
				},
				{
					title:       "JavaScript Basics",
					description: "Client-side scripting and DOM manipulation",
					topics: []topicData{
						{
							title: "Variables and Scope",
							content: "# Variables and Scope\n\n`let` and `const` are block-scoped; `var` is function-scoped " +
								"and hoisted, which is why modern code avoids it.",
							examples: []models.Example{
								{
									Title:       "Block Scope",
									Description: "let stays inside its block",
									Code:        "{\n  let x = 1;\n}\n// x is not defined here",
									Language:    "javascript",
								},
							},
						},
					},
					quiz: nil,
				},
			},
		},
	}
}
