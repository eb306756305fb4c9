package seam

// Question is one bilingual interview question.
type Question struct {
	EN string
	AR string
}

func (q Question) In(language string) string {
	if language == "ar" {
		return q.AR
	}
	return q.EN
}

// QuestionSet is the pool the dialogue oracle draws from for one category.
type QuestionSet struct {
	Opening []Question
	Probing []Question
	Closing []Question
}

// OpeningQuestion returns the canonical opening question for a category key,
// used both to seed the greeting and to synthesize transition bridges.
func OpeningQuestion(key string) (Question, bool) {
	set, ok := QuestionBank[key]
	if !ok || len(set.Opening) == 0 {
		return Question{}, false
	}
	return set.Opening[0], true
}

var QuestionBank = map[string]QuestionSet{
	KeyStrategicImplementation: {
		Opening: []Question{
			{
				EN: "Do you have a clear idea of what the company's top priorities are right now, and what your team is supposed to focus on?",
				AR: "هل لديك فكرة واضحة عن ماهية الأولويات القصوى للشركة حالياً، وما يفترض بفريقك التركيز عليه؟",
			},
			{
				EN: "Do you feel that your daily work actually contributes to the company's big goals, or does it feel disconnected?",
				AR: "هل تشعر أن عملك اليومي يساهم فعلاً في تحقيق أهداف الشركة الكبرى، أم تشعر أنه منفصل عنها؟",
			},
		},
		Probing: []Question{
			{
				EN: "Can you give a specific example of when strategic priorities were unclear or changed unexpectedly?",
				AR: "هل يمكنك إعطاء مثال محدد عندما كانت الأولويات الاستراتيجية غير واضحة أو تغيرت بشكل غير متوقع؟",
			},
			{
				EN: "How does this lack of clarity affect your day-to-day work?",
				AR: "كيف يؤثر عدم الوضوح هذا على عملك اليومي؟",
			},
			{
				EN: "Have you experienced situations where a project or initiative was launched and then abandoned? What happened?",
				AR: "هل مررت بمواقف تم فيها إطلاق مشروع أو مبادرة ثم التخلي عنها؟ ماذا حدث؟",
			},
			{
				EN: "Do you feel that management decisions reflect a long-term plan, or do things feel more reactive?",
				AR: "هل تشعر أن قرارات الإدارة تعكس خطة طويلة المدى، أم أن الأمور تبدو أكثر ردود أفعال آنية؟",
			},
			{
				EN: "Have you seen people leave the organization, or think about leaving, because of unclear direction or broken promises? How common is that?",
				AR: "هل رأيت أشخاصاً يغادرون المنظمة أو يفكرون في المغادرة بسبب عدم وضوح الاتجاه أو الوعود المكسورة؟ ما مدى شيوع ذلك؟",
			},
		},
		Closing: []Question{
			{
				EN: "Is there anything else you would like to share about the organization's strategic direction?",
				AR: "هل هناك أي شيء آخر تود مشاركته حول التوجه الاستراتيجي للمنظمة؟",
			},
		},
	},
	KeyWorkingConditions: {
		Opening: []Question{
			{
				EN: "How would you describe your current working conditions, both the physical environment and the general atmosphere?",
				AR: "كيف تصف ظروف عملك الحالية، سواء البيئة المادية أو الأجواء العامة؟",
			},
			{
				EN: "Do you feel you have the tools and resources you need to do your job effectively?",
				AR: "هل تشعر أن لديك الأدوات والموارد التي تحتاجها للقيام بعملك بفعالية؟",
			},
		},
		Probing: []Question{
			{
				EN: "Can you describe a situation where working conditions made it difficult to perform your tasks?",
				AR: "هل يمكنك وصف موقف حيث جعلت ظروف العمل من الصعب أداء مهامك؟",
			},
			{
				EN: "Do you feel psychologically safe to express concerns or disagree with a decision at work?",
				AR: "هل تشعر بالأمان النفسي للتعبير عن مخاوفك أو الاعتراض على قرار في العمل؟",
			},
			{
				EN: "Has there been a time when the lack of proper equipment or resources affected the quality of your output?",
				AR: "هل كان هناك وقت أثر فيه نقص المعدات أو الموارد المناسبة على جودة عملك؟",
			},
			{
				EN: "Have poor working conditions ever led to sick days, stress leave, or people calling in absent more often? What patterns have you noticed?",
				AR: "هل أدت ظروف العمل السيئة إلى أيام مرضية أو إجازات إجهاد أو غياب الناس بشكل أكثر؟ ما الأنماط التي لاحظتها؟",
			},
			{
				EN: "If there's one thing about your working conditions that frustrates you the most, what is it?",
				AR: "إذا كان هناك شيء واحد في ظروف عملك يحبطك أكثر من غيره، فما هو؟",
			},
		},
		Closing: []Question{
			{
				EN: "Is there anything else you'd like to mention about your working environment?",
				AR: "هل هناك أي شيء آخر تود ذكره عن بيئة عملك؟",
			},
		},
	},
	KeyWorkOrganization: {
		Opening: []Question{
			{
				EN: "How clear is your role within the organization, and do you feel the boundaries of your responsibilities are well-defined?",
				AR: "ما مدى وضوح دورك داخل المنظمة، وهل تشعر أن حدود مسؤولياتك محددة بشكل جيد؟",
			},
			{
				EN: "How would you describe the way work processes are organized in your department?",
				AR: "كيف تصف الطريقة التي تنظم بها عمليات العمل في قسمك؟",
			},
		},
		Probing: []Question{
			{
				EN: "Can you give an example of a situation where unclear responsibilities caused problems?",
				AR: "هل يمكنك إعطاء مثال على موقف حيث تسببت المسؤوليات غير الواضحة في مشاكل؟",
			},
			{
				EN: "Do you encounter situations where decisions get delayed because of unclear authority?",
				AR: "هل تواجه مواقف تتأخر فيها القرارات بسبب عدم وضوح السلطة؟",
			},
			{
				EN: "Have you noticed tasks being duplicated, two people or teams doing essentially the same thing?",
				AR: "هل لاحظت تكرار المهام، شخصان أو فريقان يقومان بالشيء نفسه أساساً؟",
			},
			{
				EN: "Has your role expanded beyond what you were originally hired or assigned to do? How does that affect you?",
				AR: "هل توسع دورك إلى ما هو أبعد مما تم تعيينك للقيام به أصلاً؟ كيف يؤثر ذلك عليك؟",
			},
			{
				EN: "Are there problems in your area that everyone knows about but nobody talks about openly? What's holding people back from raising them?",
				AR: "هل هناك مشاكل في مجالك يعرفها الجميع لكن لا أحد يتحدث عنها علناً؟ ما الذي يمنع الناس من إثارتها؟",
			},
		},
		Closing: []Question{
			{
				EN: "Is there anything else about how work is structured or organized that you would like to share?",
				AR: "هل هناك أي شيء آخر حول كيفية هيكلة أو تنظيم العمل تود مشاركته؟",
			},
		},
	},
	KeyTimeManagement: {
		Opening: []Question{
			{
				EN: "How do you feel about the way your time is used during a typical workday?",
				AR: "كيف تشعر حيال الطريقة التي يُستخدم بها وقتك خلال يوم عمل نموذجي؟",
			},
			{
				EN: "Do you feel you have enough time to complete your important tasks without constant pressure?",
				AR: "هل تشعر أن لديك وقتاً كافياً لإنجاز مهامك المهمة دون ضغط مستمر؟",
			},
		},
		Probing: []Question{
			{
				EN: "How often are you interrupted during tasks that require your full attention?",
				AR: "كم مرة تُقاطع أثناء المهام التي تتطلب انتباهك الكامل؟",
			},
			{
				EN: "Do you feel that meetings are a good use of your time, or are there too many that don't produce results?",
				AR: "هل تشعر أن الاجتماعات هي استخدام جيد لوقتك، أم أن هناك الكثير منها لا يحقق نتائج؟",
			},
			{
				EN: "Does your work often encroach on your personal or family time? How does that make you feel?",
				AR: "هل يتعدى عملك غالباً على وقتك الشخصي أو العائلي؟ كيف يشعرك ذلك؟",
			},
			{
				EN: "Would you say your daily work is mostly planned and proactive, or mostly responding to urgent issues?",
				AR: "هل تقول أن عملك اليومي مخطط ومبادر في الغالب، أم أنه استجابة للمشاكل العاجلة في الغالب؟",
			},
			{
				EN: "What's the biggest time-killer in your work that you wish someone would fix?",
				AR: "ما هو أكبر مضيع للوقت في عملك وتتمنى لو أن شخصاً ما يصلحه؟",
			},
		},
		Closing: []Question{
			{
				EN: "Is there anything else you'd like to share about how time is managed in your area?",
				AR: "هل هناك أي شيء آخر تود مشاركته حول كيفية إدارة الوقت في مجالك؟",
			},
		},
	},
	KeyCommunication3Cs: {
		Opening: []Question{
			{
				EN: "How would you describe the quality of communication within your team and across departments?",
				AR: "كيف تصف جودة التواصل داخل فريقك وعبر الأقسام؟",
			},
			{
				EN: "Do you feel that information reaches you in a timely and useful manner?",
				AR: "هل تشعر أن المعلومات تصل إليك في الوقت المناسب وبطريقة مفيدة؟",
			},
		},
		Probing: []Question{
			{
				EN: "Can you share an example where poor communication or coordination caused a problem?",
				AR: "هل يمكنك مشاركة مثال حيث تسبب ضعف التواصل أو التنسيق في مشكلة؟",
			},
			{
				EN: "How well do different departments or teams cooperate when they need to work together?",
				AR: "ما مدى تعاون الأقسام أو الفرق المختلفة عندما يحتاجون للعمل معاً؟",
			},
			{
				EN: "Is communication mostly top-down, or do employees have channels to share ideas upward?",
				AR: "هل التواصل في الغالب من أعلى لأسفل، أم أن للموظفين قنوات لمشاركة الأفكار صعوداً؟",
			},
			{
				EN: "When conflicts arise between colleagues or teams, how are they usually handled?",
				AR: "عندما تنشأ خلافات بين الزملاء أو الفرق، كيف يتم التعامل معها عادةً؟",
			},
			{
				EN: "Is there something about how things work here that you've been wanting to say but haven't had the chance to?",
				AR: "هل هناك شيء حول كيفية سير الأمور هنا كنت تريد قوله لكن لم تتح لك الفرصة؟",
			},
		},
		Closing: []Question{
			{
				EN: "Is there anything else you'd like to add about communication, coordination, or teamwork?",
				AR: "هل هناك أي شيء آخر تود إضافته حول التواصل أو التنسيق أو العمل الجماعي؟",
			},
		},
	},
	KeyIntegratedTraining: {
		Opening: []Question{
			{
				EN: "How would you describe the training and development opportunities available to you?",
				AR: "كيف تصف فرص التدريب والتطوير المتاحة لك؟",
			},
			{
				EN: "Do you feel adequately prepared and supported to handle your current responsibilities?",
				AR: "هل تشعر أنك مستعد ومدعوم بشكل كافٍ للتعامل مع مسؤولياتك الحالية؟",
			},
		},
		Probing: []Question{
			{
				EN: "Can you describe a situation where a lack of training or skills affected your performance or your team's performance?",
				AR: "هل يمكنك وصف موقف حيث أثر نقص التدريب أو المهارات على أدائك أو أداء فريقك؟",
			},
			{
				EN: "How is knowledge transferred when someone leaves or changes roles?",
				AR: "كيف يتم نقل المعرفة عندما يغادر شخص ما أو يغير دوره؟",
			},
			{
				EN: "When you receive training, do you feel you can actually apply what you learned in your daily work?",
				AR: "عندما تتلقى تدريباً، هل تشعر أنك تستطيع فعلاً تطبيق ما تعلمته في عملك اليومي؟",
			},
			{
				EN: "If a key person in your team were to leave tomorrow, what knowledge or skills would be lost?",
				AR: "إذا كان شخص رئيسي في فريقك سيغادر غداً، ما هي المعرفة أو المهارات التي ستفقد؟",
			},
			{
				EN: "What's the one skill or knowledge gap in your team that, if fixed, would make the biggest difference?",
				AR: "ما هي الفجوة في المهارة أو المعرفة في فريقك التي، إذا تم سدها، ستحدث أكبر فرق؟",
			},
		},
		Closing: []Question{
			{
				EN: "Is there anything else you'd like to share about training, learning, or professional development?",
				AR: "هل هناك أي شيء آخر تود مشاركته حول التدريب أو التعلم أو التطوير المهني؟",
			},
		},
	},
}
